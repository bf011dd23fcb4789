package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/cli"
	"github.com/orizon-lang/astkit/internal/document"
	"github.com/orizon-lang/astkit/internal/printer"
)

func newBuildCommand(gs *globalState) *cobra.Command {
	var (
		outDir   string
		diff     bool
		check    bool
		simplify bool
	)

	cmd := &cobra.Command{
		Use:   "build FILE...",
		Short: "Generate source files from tree documents",
		Long: `Decode each document, print its compilation unit and write the result
next to the document (or into --out) with a .dart extension. Unchanged
files are left alone. With --diff nothing is written; the difference
against the current output is shown instead.`,
		Example: `  astgen build api.yaml models.yaml
  astgen build --out gen --check --lang-version 1.8.0 *.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gs.buildOptions(outDir, check, simplify)
			opts.Diff = diff
			results, err := cli.Build(cmd.Context(), gs.logger, args, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case diff:
					fmt.Fprint(out, r.Diff)
				case r.Changed:
					fmt.Fprintf(out, "wrote %s\n", r.Output)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for generated files")
	cmd.Flags().BoolVar(&diff, "diff", false, "show changes instead of writing files")
	cmd.Flags().BoolVar(&check, "check", false, "reject shapes newer than --lang-version")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "fold constants and drop dead code before printing")
	return cmd
}

// buildOptions assembles the options shared by build and watch. With check
// set, documents are held to the configured language version.
func (gs *globalState) buildOptions(outDir string, check, simplify bool) cli.BuildOptions {
	opts := cli.BuildOptions{OutDir: outDir, Workers: gs.cfg.Workers, Simplify: simplify}
	if check {
		opts.LangVersion = gs.cfg.LangVersion.String()
	}
	return opts
}

func newPrintCommand(gs *globalState) *cobra.Command {
	var simplify bool

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the source of a tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := document.DecodeFile(args[0])
			if err != nil {
				return err
			}
			gs.logger.WithField("file", args[0]).Debug("decoded")
			if simplify {
				if unit, err = cli.Simplify(unit); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), printer.FormatFile(unit))
			return err
		},
	}
	cmd.Flags().BoolVar(&simplify, "simplify", false, "fold constants and drop dead code before printing")
	return cmd
}
