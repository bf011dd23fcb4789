package main

import (
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/cli"
)

func newWatchCommand(gs *globalState) *cobra.Command {
	var (
		outDir   string
		check    bool
		simplify bool
	)

	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Rebuild documents whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := gs.buildOptions(outDir, check, simplify)
			if _, err := cli.Build(ctx, gs.logger, args, opts); err != nil {
				gs.logger.WithError(err).Warn("initial build failed")
			}

			w, err := cli.NewWatcher(gs.logger, args)
			if err != nil {
				return err
			}
			gs.logger.WithField("files", len(args)).Info("watching")
			return w.Run(ctx, func(path string) {
				r, err := cli.BuildFile(path, opts)
				if err != nil {
					gs.logger.WithField("file", path).WithError(err).Error("rebuild failed")
					return
				}
				gs.logger.WithFields(logrus.Fields{
					"file":     path,
					"nodes":    r.Nodes,
					"changed":  r.Changed,
					"duration": r.Duration,
				}).Info("rebuilt")
			})
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for generated files")
	cmd.Flags().BoolVar(&check, "check", false, "reject shapes newer than --lang-version on every rebuild")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "fold constants and drop dead code before printing")
	return cmd
}
