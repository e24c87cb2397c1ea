package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/vocab/pkg/db"
	"github.com/japaniel/vocab/pkg/entry"
	"github.com/japaniel/vocab/pkg/ingest"
)

func newSearchCmd(c *cli) *cobra.Command {
	var q db.Query
	cmd := &cobra.Command{
		Use:   "search [sources...]",
		Short: "Find entries by text, initial letter or tag",
		Long: `Search loads the vocabulary files into an in-memory index and prints
the matching entries in alphabetical order. --text matches headwords and
meanings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.Tag != "" && !entry.Tag(q.Tag).IsValid() {
				return fmt.Errorf("unknown tag %q", q.Tag)
			}
			dict, _, err := c.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			conn, err := db.Open()
			if err != nil {
				return err
			}
			defer conn.Close()

			ix := ingest.NewIndexer()
			ix.Logger = c.logger
			if _, err := ix.Index(cmd.Context(), conn, dict); err != nil {
				return fmt.Errorf("index: %w", err)
			}

			q.Language = c.cfg.Language
			rows, err := db.Search(conn, q)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range rows {
				if r.Line != "" {
					fmt.Fprintln(w, r.Line)
				} else {
					fmt.Fprintln(w, r.Headword)
				}
			}
			c.logger.Debug("search done", "matches", len(rows))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&q.Text, "text", "t", "", "match headwords and meanings containing the text")
	flags.StringVarP(&q.Initial, "initial", "i", "", "match the first letter of the sort key")
	flags.StringVar(&q.Tag, "tag", "", "match a tag code such as n, v or adj")
	flags.IntVarP(&q.Limit, "limit", "n", 0, "print at most n entries")
	return cmd
}
