package entry

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalizeHeadword produces the stored form of a headword.
//
// Article-bearing languages keep the casing of expressions and upper-case
// the first letter of every non-article part of a noun ("die schule"
// becomes "die Schule"). The rest of each part is left as given.
// Everything else is lower-cased. Casers are created per call because they
// carry state and the loader normalizes from several goroutines.
func normalizeHeadword(l Language, raw string, tags TagSet) (string, error) {
	word := norm.NFC.String(strings.TrimSpace(raw))
	if word == "" {
		return "", ErrEmptyHeadword
	}

	tag := l.profile().tag
	switch {
	case !l.BearsArticles():
		return cases.Lower(tag).String(word), nil
	case tags.Has(Noun):
		upper := cases.Upper(tag)
		parts := strings.Fields(word)
		for i, part := range parts {
			if l.IsArticle(part) {
				continue
			}
			_, size := utf8.DecodeRuneInString(part)
			parts[i] = upper.String(part[:size]) + part[size:]
		}
		return strings.Join(parts, " "), nil
	case !tags.Has(Expression):
		return cases.Lower(tag).String(word), nil
	default:
		return word, nil
	}
}
