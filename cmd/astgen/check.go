package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/cli"
)

func newCheckCommand(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check documents against the target language version",
		Long: `Report every node whose shape the target language version (--lang-version)
does not accept, with an excerpt of the printed source.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen)
			if !gs.colored(out) {
				ok.DisableColor()
			}

			version := gs.cfg.LangVersion.String()
			failed := 0
			for _, path := range args {
				report, err := cli.CheckFile(path, version)
				if err != nil {
					return err
				}
				gs.logger.WithFields(logrus.Fields{
					"file":    path,
					"errors":  report.Diagnostic.ErrorCount(),
					"minimum": report.Minimum.String(),
				}).Debug("checked")

				if report.OK() {
					ok.Fprintf(out, "ok")
					fmt.Fprintf(out, " %s (needs %s)\n", path, report.Minimum)
					continue
				}
				failed++
				fmt.Fprint(out, report.Render())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) need a newer language than %s", failed, len(args), version)
			}
			return nil
		},
	}
}
