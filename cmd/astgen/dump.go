package main

import (
	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/document"
	"github.com/orizon-lang/astkit/internal/printer"
)

func newDumpCommand(gs *globalState) *cobra.Command {
	var spans bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Show the tree of a document node by node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := document.DecodeFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts := printer.DumpOptions{Color: gs.colored(out)}
			if spans {
				opts.Result = printer.PrintFile(args[0], unit)
			}
			return printer.Dump(out, unit, opts)
		},
	}
	cmd.Flags().BoolVar(&spans, "spans", false, "show where each node lands in the printed source")
	return cmd
}
