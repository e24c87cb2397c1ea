package dictionary

import (
	"slices"
	"strings"

	"github.com/japaniel/vocab/pkg/entry"
)

// Lookup finds the entries matching term. A term matches an entry when it
// equals the headword or the sort key, ignoring case, so "schule" finds
// "die Schule". Results are in alphabetical order.
func (d *Dictionary) Lookup(term string) []*entry.Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	// Strategy:
	// 1. Exact match on the lower-cased headword through the index
	// 2. Scan for sort key matches, which covers headwords with an article
	candidates := make(map[entry.Key]*entry.Entry)
	for _, k := range d.byWord[term] {
		candidates[k] = d.entries[k]
	}
	for k, e := range d.entries {
		if _, ok := candidates[k]; ok {
			continue
		}
		key, err := e.SortKey()
		if err != nil {
			continue
		}
		if strings.ToLower(key) == term {
			candidates[k] = e
		}
	}

	results := make([]*entry.Entry, 0, len(candidates))
	for _, e := range candidates {
		results = append(results, e)
	}
	// Entries reached through the sort key always have one, the headword
	// ones fall back to ordering by headword.
	slices.SortFunc(results, func(a, b *entry.Entry) int {
		if c, err := entry.Compare(a, b); err == nil {
			return c
		}
		return strings.Compare(a.Headword(), b.Headword())
	})
	return results
}
