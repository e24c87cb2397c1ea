// Package harvest collects example sentences for dictionary entries from
// articles: it extracts the readable text of a local HTML or text file,
// splits it into sentences and attaches each sentence to the entries whose
// headword it contains.
package harvest

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japaniel/vocab/pkg/entry"
)

// Token is a word of a sentence.
type Token struct {
	Surface  string // The text as it appears (e.g. "行っ")
	BaseForm string // The dictionary form (e.g. "行く"), equal to Surface outside Japanese
}

// Analyzer segments sentences into tokens. Japanese has no spaces between
// words and goes through the kagome tokenizer; other languages are split
// at characters that cannot be part of a word.
type Analyzer struct {
	lang entry.Language
	t    *tokenizer.Tokenizer
}

// NewAnalyzer creates an analyzer for lang.
func NewAnalyzer(lang entry.Language) *Analyzer {
	a := &Analyzer{lang: lang}
	if lang == entry.Japanese {
		a.t = entry.JapaneseTokenizer()
	}
	return a
}

// Analyze breaks text into tokens.
func (a *Analyzer) Analyze(text string) []Token {
	if a.t == nil {
		var result []Token
		for _, w := range strings.FieldsFunc(text, isWordBreak) {
			result = append(result, Token{Surface: w, BaseForm: w})
		}
		return result
	}

	var result []Token
	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		// IPA features: POS, 3 sub-POS, conjugation type and form, base form, reading, pronunciation.
		base := token.Surface
		if b, ok := token.BaseForm(); ok && b != "*" {
			base = b
		}
		result = append(result, Token{Surface: token.Surface, BaseForm: base})
	}
	return result
}

// isWordBreak keeps letters, digits, apostrophes and hyphens together so
// "l'école" and "E-Mail" stay one token.
func isWordBreak(r rune) bool {
	switch r {
	case '\'', '’', '-':
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
}
