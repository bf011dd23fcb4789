package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/orizon-lang/astkit/internal/cli"
)

// globalState is shared by every command. cfg and logger are set once the
// configuration has been loaded, before any command runs.
type globalState struct {
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer

	cfg    *cli.Config
	logger *logrus.Logger
}

func newGlobalState() *globalState {
	return &globalState{stdout: os.Stdout, stderr: os.Stderr}
}

// colored reports whether w gets coloured output: only real terminals do,
// subject to the color setting.
func (gs *globalState) colored(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && gs.cfg.UseColor(f)
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:   "astgen",
		Short: "Build and inspect syntax trees described by YAML documents",
		Long: `astgen turns YAML tree documents into source files.

Every node of a document is created through the tree factory, printed with
the canonical spacing rules and can be checked against the node shapes a
given language version accepts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return gs.load(cmd.Root().PersistentFlags())
		},
	}
	root.SetOut(gs.stdout)
	root.SetErr(gs.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&gs.cfgFile, "config", "", "config file (default: ./astgen.yaml or $HOME/.config/astgen/astgen.yaml)")
	flags.String(cli.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(cli.KeyColor, cli.ColorAuto, "colour output (auto, always, never)")
	flags.String(cli.KeyLangVersion, "2.0.0", "target language version for shape checks")
	flags.Int(cli.KeyWorkers, 0, "documents built concurrently (default: number of CPUs)")

	root.AddCommand(
		newBuildCommand(gs),
		newPrintCommand(gs),
		newDumpCommand(gs),
		newCheckCommand(gs),
		newLocateCommand(gs),
		newWatchCommand(gs),
		newVersionCommand(gs),
	)
	return root
}

// load reads the configuration; flags given on the command line win over
// the environment and the config file.
func (gs *globalState) load(flags *pflag.FlagSet) error {
	v, err := cli.NewViper(gs.cfgFile)
	if err != nil {
		return err
	}
	for _, key := range []string{cli.KeyLogLevel, cli.KeyColor, cli.KeyLangVersion, cli.KeyWorkers} {
		if f := flags.Lookup(key); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := cli.LoadConfig(v)
	if err != nil {
		return err
	}
	gs.cfg = cfg
	gs.logger = cli.NewLogger(cfg, gs.stderr, gs.colored(gs.stderr))
	return nil
}
