package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/japaniel/vocab/internal/app"
	"github.com/japaniel/vocab/internal/config"
	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/ingest"
)

var errNoSources = errors.New("no vocabulary files given: pass them as arguments or set sources in the config")

// cli holds the persistent flags and the state shared by all commands.
type cli struct {
	configPath string
	lang       string
	separator  string
	verbose    bool
	strict     bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "vocab",
		Short: "Maintain personal multilingual vocabulary lists",
		Long: `vocab merges, sorts and checks vocabulary lists kept as delimited text
files, one word per line: headword, meanings, examples, notes and tags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default ./vocab.yaml if present)")
	flags.StringVarP(&c.lang, "lang", "l", "", "language of the vocabulary files (de, en, fr, es, it, ja)")
	flags.StringVar(&c.separator, "separator", "", "field separator: tab, comma, semicolon, pipe or a literal string")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&c.strict, "strict", false, "abort on the first malformed line")

	root.AddCommand(
		newBuildCmd(c),
		newCheckCmd(c),
		newSearchCmd(c),
		newShowCmd(c),
		newHarvestCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and installs the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = c.lang
	}
	if flags.Changed("separator") {
		cfg.Separator = c.separator
	}
	if flags.Changed("strict") {
		cfg.Load.Strict = c.strict
	}
	if c.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = app.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

// sources expands the source arguments, or the configured sources when
// there are none.
func (c *cli) sources(args []string) (patterns, files []string, err error) {
	patterns = args
	if len(patterns) == 0 {
		patterns = c.cfg.Sources
	}
	if len(patterns) == 0 {
		return nil, nil, errNoSources
	}
	files, err = ingest.ExpandSources(patterns)
	return patterns, files, err
}

func (c *cli) loader() *ingest.Loader {
	l := ingest.NewLoader()
	l.Separator = c.cfg.FieldSeparator()
	l.Strict = c.cfg.Load.Strict
	l.Workers = c.cfg.Load.Workers
	l.Logger = c.logger
	l.OnProgress = func(current, total int) {
		c.logger.Debug("file merged", "done", current, "total", total)
	}
	return l
}

// load reads the given sources into one dictionary.
func (c *cli) load(ctx context.Context, args []string) (*dictionary.Dictionary, ingest.Report, error) {
	_, files, err := c.sources(args)
	if err != nil {
		return nil, ingest.Report{}, err
	}
	dict, report, err := c.loader().Load(ctx, c.cfg.Language, files)
	if err != nil {
		return nil, report, err
	}
	c.logger.Info("vocabulary loaded",
		"files", report.Files, "lines", report.Lines, "entries", report.Entries,
		"merged", report.Merged, "skipped", report.Skipped)
	return dict, report, nil
}

// printer formats counts for the vocabulary language.
func (c *cli) printer() *message.Printer {
	return message.NewPrinter(language.Make(c.cfg.Language))
}

func (c *cli) writeOptions() dictionary.WriteOptions {
	return dictionary.WriteOptions{GroupHeadings: !c.cfg.Output.Plain}
}

func (c *cli) outputPath(flag string) string {
	if flag != "" {
		return flag
	}
	return c.cfg.Output.Path
}

func fprintf(cmd *cobra.Command, p *message.Printer, format string, args ...any) {
	fmt.Fprint(cmd.OutOrStdout(), p.Sprintf(format, args...))
}
