package entry

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/language"
)

// Language is a supported vocabulary language code.
type Language string

const (
	German   Language = "de"
	English  Language = "en"
	French   Language = "fr"
	Spanish  Language = "es"
	Italian  Language = "it"
	Japanese Language = "ja"
)

func (l Language) String() string { return string(l) }

// profile is the static per-language configuration shared by the normalizer
// and the sort-key extractor. It is built once and never mutated.
type profile struct {
	tag      language.Tag
	articles map[string]bool
	// replacer maps characters to their sortable plain-letter equivalents.
	replacer *strings.Replacer
	// transliterate folds whatever the replacer left behind.
	transliterate func(string) string
}

var profiles = map[Language]profile{
	German: {
		tag:      language.German,
		articles: wordSet("der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "einem", "einer", "eines"),
		// DIN 5007-1: umlauts sort with their base vowel.
		replacer: strings.NewReplacer(
			"ß", "ss", "ẞ", "SS",
			"ä", "a", "ö", "o", "ü", "u",
			"Ä", "A", "Ö", "O", "Ü", "U",
		),
		transliterate: unidecode.Unidecode,
	},
	English: {
		tag:           language.English,
		articles:      wordSet("the", "a", "an"),
		replacer:      strings.NewReplacer("æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE"),
		transliterate: unidecode.Unidecode,
	},
	French: {
		tag:      language.French,
		articles: wordSet("le", "la", "les", "l'", "un", "une", "des", "du"),
		replacer: strings.NewReplacer(
			"œ", "oe", "Œ", "OE", "æ", "ae", "Æ", "AE",
			"ç", "c", "Ç", "C",
			"é", "e", "è", "e", "ê", "e", "ë", "e",
			"à", "a", "â", "a", "î", "i", "ï", "i",
			"ô", "o", "ù", "u", "û", "u", "ü", "u", "ÿ", "y",
		),
		transliterate: unidecode.Unidecode,
	},
	Spanish: {
		tag:      language.Spanish,
		articles: wordSet("el", "la", "los", "las", "un", "una", "unos", "unas"),
		replacer: strings.NewReplacer(
			"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
			"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
		),
		transliterate: unidecode.Unidecode,
	},
	Italian: {
		tag:      language.Italian,
		articles: wordSet("il", "lo", "la", "i", "gli", "le", "l'", "un", "uno", "una", "un'"),
		replacer: strings.NewReplacer(
			"à", "a", "è", "e", "é", "e", "ì", "i", "ò", "o", "ù", "u",
			"À", "A", "È", "E", "É", "E", "Ì", "I", "Ò", "O", "Ù", "U",
		),
		transliterate: unidecode.Unidecode,
	},
	Japanese: {
		tag:           language.Japanese,
		articles:      wordSet(),
		replacer:      strings.NewReplacer(),
		transliterate: kanaReading,
	},
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// ParseLanguage validates a language code. Codes are matched case-insensitively.
func ParseLanguage(code string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := profiles[l]; !ok {
		return "", &LanguageError{Code: code}
	}
	return l, nil
}

// SupportedLanguages returns the supported language codes in sorted order.
func SupportedLanguages() []Language {
	out := make([]Language, 0, len(profiles))
	for l := range profiles {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsArticle reports whether word is one of the language's article words.
// The comparison is exact.
func (l Language) IsArticle(word string) bool {
	return profiles[l].articles[word]
}

// BearsArticles reports whether nouns of this language are written with
// their article and capitalized.
func (l Language) BearsArticles() bool { return l == German }

func (l Language) profile() profile { return profiles[l] }
