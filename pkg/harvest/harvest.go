package harvest

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/entry"
)

// Harvester attaches example sentences to dictionary entries.
type Harvester struct {
	// MaxExamples caps the examples of an entry. Entries that already have
	// that many are left alone. 0 means no cap.
	MaxExamples int
	// Logger reports every added example at debug level. nil means no logging.
	Logger *slog.Logger
}

// NewHarvester creates a Harvester with default settings.
func NewHarvester() *Harvester {
	return &Harvester{MaxExamples: 3}
}

type target struct {
	e      *entry.Entry
	needle []string
}

// Harvest adds each sentence as an example to the entries whose headword
// occurs in it as a run of whole words, ignoring case. Leading articles of
// the headword are not required, so "die Schule" matches "zur Schule".
// It returns the number of examples added.
func (h *Harvester) Harvest(dict *dictionary.Dictionary, sentences []string) int {
	an := NewAnalyzer(dict.Language())
	fold := cases.Fold()

	var targets []target
	for _, e := range dict.Entries() {
		needle := h.needle(an, fold, e)
		if len(needle) == 0 {
			continue
		}
		targets = append(targets, target{e: e, needle: needle})
	}

	added := 0
	for _, s := range sentences {
		tokens := an.Analyze(s)
		surfaces := make([]string, len(tokens))
		bases := make([]string, len(tokens))
		for i, t := range tokens {
			surfaces[i] = fold.String(t.Surface)
			bases[i] = fold.String(t.BaseForm)
		}

		for _, t := range targets {
			if h.MaxExamples > 0 && len(t.e.Examples()) >= h.MaxExamples {
				continue
			}
			if strings.Contains(s, t.e.Separator()) || strings.Contains(s, entry.SubFieldSeparator) {
				continue
			}
			if !containsRun(surfaces, bases, t.needle) {
				continue
			}
			before := len(t.e.Examples())
			t.e.AddExample(s)
			if len(t.e.Examples()) > before {
				added++
				if h.Logger != nil {
					h.Logger.Debug("example added", "headword", t.e.Headword(), "sentence", s)
				}
			}
		}
	}
	return added
}

// needle is the case-folded token sequence searched for e: the headword
// without leading articles and without leading parts such as "(sich)".
func (h *Harvester) needle(an *Analyzer, fold cases.Caser, e *entry.Entry) []string {
	parts := strings.Fields(e.Headword())
	for len(parts) > 0 {
		p := parts[0]
		r, _ := utf8.DecodeRuneInString(p)
		if !e.Language().IsArticle(strings.ToLower(p)) && unicode.IsLetter(r) {
			break
		}
		parts = parts[1:]
	}
	var needle []string
	for _, t := range an.Analyze(strings.Join(parts, " ")) {
		needle = append(needle, fold.String(t.Surface))
	}
	return needle
}

// containsRun reports whether needle occurs as consecutive tokens. A
// token matches by surface or by dictionary form.
func containsRun(surfaces, bases, needle []string) bool {
	for i := 0; i+len(needle) <= len(surfaces); i++ {
		match := true
		for j, n := range needle {
			if surfaces[i+j] != n && bases[i+j] != n {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
