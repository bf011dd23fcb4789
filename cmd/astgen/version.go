package main

import (
	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/cli"
)

func newVersionCommand(_ *globalState) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.WriteVersion(cmd.OutOrStdout(), "astgen", jsonOutput)
		},
	}
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "output JSON")
	return cmd
}
