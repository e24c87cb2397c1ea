package entry

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

var (
	kanaOnce      sync.Once
	kanaTokenizer *tokenizer.Tokenizer
)

// japaneseTokenizer loads the IPA dictionary on first use. The tokenizer is
// read-only after construction and shared by all goroutines.
func japaneseTokenizer() *tokenizer.Tokenizer {
	kanaOnce.Do(func() {
		t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err == nil {
			kanaTokenizer = t
		}
	})
	return kanaTokenizer
}

// JapaneseTokenizer exposes the shared tokenizer to other packages. It
// returns nil if the dictionary could not be loaded.
func JapaneseTokenizer() *tokenizer.Tokenizer { return japaneseTokenizer() }

// kanaReading replaces a Japanese headword with its hiragana reading so that
// kanji headwords sort in gojūon order. Tokens without a reading (latin
// letters, punctuation, unknown words) keep their surface form. Spaces are
// preserved between the space-delimited parts of the headword.
func kanaReading(s string) string {
	t := japaneseTokenizer()
	if t == nil {
		return ToHiragana(s)
	}

	parts := strings.Split(s, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}
		var b strings.Builder
		for _, tok := range t.Tokenize(part) {
			if tok.Class == tokenizer.DUMMY {
				continue
			}
			// IPA features: 7 is the katakana reading.
			if reading, ok := tok.Reading(); ok && reading != "*" {
				b.WriteString(reading)
				continue
			}
			b.WriteString(tok.Surface)
		}
		parts[i] = ToHiragana(b.String())
	}
	return strings.Join(parts, " ")
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
