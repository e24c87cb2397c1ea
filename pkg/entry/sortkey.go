package entry

import (
	"cmp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SortKey returns the string used to alphabetize the entry. Language specific
// characters are replaced by sortable plain letters, then leading articles
// and leading parts that do not start with a letter are dropped:
// "die Schule" sorts as "Schule", "(sich) freuen" as "freuen".
func (e *Entry) SortKey() (string, error) {
	p := e.language.profile()
	word := p.replacer.Replace(e.headword)
	if p.transliterate != nil {
		word = p.transliterate(word)
	}

	parts := strings.Fields(word)
	for i, part := range parts {
		if e.language.IsArticle(strings.ToLower(part)) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(part); !unicode.IsLetter(r) {
			continue
		}
		return strings.Join(parts[i:], " "), nil
	}
	return "", &SortError{Headword: e.headword}
}

// Initial returns the first character of the sort key, used to group
// entries by letter.
func (e *Entry) Initial() (string, error) {
	key, err := e.SortKey()
	if err != nil {
		return "", err
	}
	r, _ := utf8.DecodeRuneInString(key)
	return string(r), nil
}

// Compare orders two entries alphabetically. Sort keys are compared without
// regard to case first, so German nouns do not sort before every lower-case
// word; the remaining comparisons make the order total.
func Compare(a, b *Entry) (int, error) {
	ka, err := a.SortKey()
	if err != nil {
		return 0, err
	}
	kb, err := b.SortKey()
	if err != nil {
		return 0, err
	}
	return CompareKeyed(ka, a, kb, b), nil
}

// CompareKeyed is Compare for callers that already computed the sort keys.
func CompareKeyed(ka string, a *Entry, kb string, b *Entry) int {
	if c := cmp.Compare(strings.ToLower(ka), strings.ToLower(kb)); c != 0 {
		return c
	}
	if c := cmp.Compare(ka, kb); c != 0 {
		return c
	}
	if c := cmp.Compare(a.headword, b.headword); c != 0 {
		return c
	}
	if c := cmp.Compare(a.tags, b.tags); c != 0 {
		return c
	}
	return cmp.Compare(a.language, b.language)
}
