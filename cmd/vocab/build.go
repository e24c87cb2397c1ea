package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/japaniel/vocab/internal/watch"
	"github.com/japaniel/vocab/pkg/ingest"
)

func newBuildCmd(c *cli) *cobra.Command {
	var (
		out      string
		watchDir bool
	)
	cmd := &cobra.Command{
		Use:   "build [sources...]",
		Short: "Merge vocabulary files into one sorted dictionary",
		Long: `Build loads the vocabulary files, merges duplicate words and writes them
in alphabetical order, grouped by initial letter.

Sources are files, directories (all *.txt below them) or patterns such as
"lists/**/*.txt". Without arguments the sources from the config are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out = c.outputPath(out)
			if err := c.build(cmd, args, out); err != nil {
				return err
			}
			if !watchDir {
				return nil
			}
			return c.watch(cmd, args, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default from config, dictionary.txt)")
	cmd.Flags().BoolVarP(&watchDir, "watch", "w", false, "rebuild when a source file changes")
	return cmd
}

func (c *cli) build(cmd *cobra.Command, args []string, out string) error {
	dict, report, err := c.load(cmd.Context(), args)
	if err != nil {
		return err
	}
	n, err := dict.WriteFile(out, c.writeOptions())
	if err != nil {
		return err
	}
	fprintf(cmd, c.printer(), "Wrote %d entries to %s (%d merged, %d skipped).\n", n, out, report.Merged, report.Skipped)
	return nil
}

// watch rebuilds on changes until the command context is canceled. Failed
// rebuilds are logged and the previous output stays in place.
func (c *cli) watch(cmd *cobra.Command, args []string, out string) error {
	patterns, files, err := c.sources(args)
	if err != nil {
		return err
	}
	dirs := watch.Dirs(files)
	for _, p := range patterns {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, filepath.Clean(p))
		}
	}

	w := &watch.Watcher{
		Match:  func(path string) bool { return ingest.MatchesSources(patterns, path) },
		Ignore: []string{out},
		Logger: c.logger,
	}
	c.logger.Info("watching for changes", "dirs", len(dirs))
	return w.Run(cmd.Context(), dirs, func(ctx context.Context) {
		if err := c.build(cmd, args, out); err != nil {
			c.logger.Error("rebuild failed", "error", err)
		}
	})
}
