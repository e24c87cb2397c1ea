package config

import (
	"fmt"
	"strings"

	"github.com/japaniel/vocab/pkg/entry"
)

// Validate checks the loaded configuration. Load calls it automatically;
// call it again after overriding fields from flags.
func (c *Config) Validate() error {
	lang, err := entry.ParseLanguage(c.Language)
	if err != nil {
		return fmt.Errorf("language: %w", err)
	}
	c.Language = string(lang)

	if err := ValidateSeparator(c.FieldSeparator()); err != nil {
		return fmt.Errorf("separator: %w", err)
	}
	if c.Load.Workers < 1 {
		return fmt.Errorf("load.workers must be >= 1 (got %d)", c.Load.Workers)
	}
	if c.Harvest.MaxExamples < 1 {
		return fmt.Errorf("harvest.max_examples must be >= 1 (got %d)", c.Harvest.MaxExamples)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// ValidateSeparator rejects separators that cannot delimit fields: the
// empty string, anything containing the sub-field separator and line breaks.
func ValidateSeparator(sep string) error {
	switch {
	case sep == "":
		return fmt.Errorf("must not be empty")
	case strings.Contains(sep, entry.SubFieldSeparator):
		return fmt.Errorf("must not contain %q", entry.SubFieldSeparator)
	case strings.ContainsAny(sep, "\r\n"):
		return fmt.Errorf("must not contain a line break")
	}
	return nil
}
