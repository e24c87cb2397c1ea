package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check [sources...]",
		Short: "Report malformed lines, invalid tags and unsortable headwords",
		Long: `Check loads the vocabulary files and lists every problem: lines that
do not parse, tag combinations that cannot be written back and headwords
without a sortable word. It exits with an error when it finds any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Collect every bad line instead of stopping at the first.
			c.cfg.Load.Strict = false
			dict, report, err := c.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			problems := len(report.Problems)
			for _, p := range report.Problems {
				fmt.Fprintln(w, p)
			}
			for _, e := range dict.Entries() {
				if _, err := e.FormatTags(); err != nil {
					fmt.Fprintf(w, "%q: %v\n", e.Headword(), err)
					problems++
				}
				if _, err := e.SortKey(); err != nil {
					fmt.Fprintf(w, "%q: %v\n", e.Headword(), err)
					problems++
				}
			}

			p := c.printer()
			if problems > 0 {
				return errors.New(p.Sprintf("%d problems in %d files", problems, report.Files))
			}
			fprintf(cmd, p, "OK: %d entries in %d files.\n", dict.Len(), report.Files)
			return nil
		},
	}
}
