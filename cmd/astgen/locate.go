package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orizon-lang/astkit/internal/cli"
)

func newLocateCommand(_ *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE LINE:COLUMN",
		Short: "Show the node at a position of the printed source",
		Long: `Print the document as the print command does and report the innermost
node covering LINE:COLUMN (both 1-based) of that output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, column, err := parseLineColumn(args[1])
			if err != nil {
				return err
			}
			loc, err := cli.Locate(args[0], line, column)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", loc.Name, loc.Span)
			_, err = fmt.Fprint(out, loc.Excerpt)
			return err
		},
	}
}

func parseLineColumn(s string) (line, column int, err error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("position %q: want LINE:COLUMN", s)
	}
	if line, err = strconv.Atoi(l); err != nil || line < 1 {
		return 0, 0, fmt.Errorf("position %q: bad line", s)
	}
	if column, err = strconv.Atoi(c); err != nil || column < 1 {
		return 0, 0, fmt.Errorf("position %q: bad column", s)
	}
	return line, column, nil
}
