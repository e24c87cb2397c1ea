package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/japaniel/vocab/pkg/harvest"
)

func newHarvestCmd(c *cli) *cobra.Command {
	var from, out string
	cmd := &cobra.Command{
		Use:   "harvest --from <article> [sources...]",
		Short: "Add example sentences from an article",
		Long: `Harvest reads a local HTML or text file, splits it into sentences and
adds each sentence as an example to the words it contains. The merged
dictionary is written like build does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, _, err := c.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			f, err := os.Open(from)
			if err != nil {
				return fmt.Errorf("open article: %w", err)
			}
			defer f.Close()
			article, err := harvest.ExtractText(f, from)
			if err != nil {
				return err
			}
			sentences := harvest.SplitSentences(article.Text)
			c.logger.Debug("article read", "title", article.Title, "sentences", len(sentences))

			h := harvest.NewHarvester()
			h.MaxExamples = c.cfg.Harvest.MaxExamples
			h.Logger = c.logger
			added := h.Harvest(dict, sentences)

			out = c.outputPath(out)
			n, err := dict.WriteFile(out, c.writeOptions())
			if err != nil {
				return err
			}
			fprintf(cmd, c.printer(), "Added %d examples from %d sentences, wrote %d entries to %s.\n", added, len(sentences), n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "article to read (.html, .htm or plain text)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default from config, dictionary.txt)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
