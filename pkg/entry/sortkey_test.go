package entry

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lang    string
		word    string
		tags    TagSet
		key     string
		initial string
	}{
		{name: "article excluded", lang: "de", word: "die Schule", tags: NewTagSet(Noun, Feminine), key: "Schule", initial: "S"},
		{name: "eszett", lang: "de", word: "die Straße", tags: NewTagSet(Noun, Feminine), key: "Strasse", initial: "S"},
		{name: "umlaut initial", lang: "de", word: "das Öl", tags: NewTagSet(Noun, Neuter), key: "Ol", initial: "O"},
		{name: "leading punctuation skipped", lang: "de", word: "(sich) freuen", tags: NewTagSet(Verb), key: "freuen", initial: "f"},
		{name: "rest of the phrase kept", lang: "de", word: "der Tag der Arbeit", tags: NewTagSet(Noun), key: "Tag der Arbeit", initial: "T"},
		{name: "article match ignores case", lang: "de", word: "Der Hund", tags: NewTagSet(Noun), key: "Hund", initial: "H"},
		{name: "english article", lang: "en", word: "the house", tags: NewTagSet(Noun), key: "house", initial: "h"},
		{name: "french ligature", lang: "fr", word: "le œuf", tags: NewTagSet(Noun), key: "oeuf", initial: "o"},
		{name: "spanish fallback", lang: "es", word: "el niño", tags: NewTagSet(Noun), key: "nino", initial: "n"},
		{name: "digits skipped", lang: "en", word: "24 hours", tags: NewTagSet(Expression), key: "hours", initial: "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := New(tt.lang, tt.word, tt.tags)
			require.NoError(t, err)

			key, err := e.SortKey()
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)

			initial, err := e.Initial()
			require.NoError(t, err)
			assert.Equal(t, tt.initial, initial)
		})
	}
}

func TestSortKey_NoSortablePart(t *testing.T) {
	for _, word := range []string{"die", "der die das", "...", "- 42"} {
		e, err := New("de", word, NewTagSet(Expression))
		require.NoError(t, err)

		_, err = e.SortKey()
		require.ErrorIs(t, err, ErrSort, word)
		_, err = e.Initial()
		require.ErrorIs(t, err, ErrSort, word)

		var sortErr *SortError
		require.ErrorAs(t, err, &sortErr)
		assert.Equal(t, word, sortErr.Headword)
	}
}

func TestCompare(t *testing.T) {
	words := []struct {
		word string
		tags TagSet
	}{
		{"die Zeit", NewTagSet(Noun, Feminine)},
		{"laufen", NewTagSet(Verb)},
		{"das Auto", NewTagSet(Noun, Neuter)},
		{"Äpfel", NewTagSet(Noun, Plural)},
		{"schön", NewTagSet(Adjective)},
		{"die Schule", NewTagSet(Noun, Feminine)},
	}
	var entries []*Entry
	for _, w := range words {
		e, err := New("de", w.word, w.tags)
		require.NoError(t, err)
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *Entry) int {
		c, err := Compare(a, b)
		require.NoError(t, err)
		return c
	})

	var got []string
	for _, e := range entries {
		got = append(got, e.Headword())
	}
	assert.Equal(t, []string{"Äpfel", "das Auto", "laufen", "schön", "die Schule", "die Zeit"}, got)
}

func TestCompare_SameKeyIsStillTotal(t *testing.T) {
	noun, err := New("de", "das Essen", NewTagSet(Noun, Neuter))
	require.NoError(t, err)
	verb, err := New("de", "essen", NewTagSet(Verb))
	require.NoError(t, err)

	c1, err := Compare(noun, verb)
	require.NoError(t, err)
	c2, err := Compare(verb, noun)
	require.NoError(t, err)
	assert.NotZero(t, c1)
	assert.Equal(t, -c1, c2)
}

func TestSortKey_JapaneseReading(t *testing.T) {
	e, err := New("ja", "学校", NewTagSet(Noun))
	require.NoError(t, err)

	key, err := e.SortKey()
	require.NoError(t, err)
	assert.Equal(t, "がっこう", key)

	initial, err := e.Initial()
	require.NoError(t, err)
	assert.Equal(t, "が", initial)
}

func TestToHiragana(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"ア", "あ"},
		{"ガ", "が"},
		{"パ", "ぱ"},
		{"ン", "ん"},
		{"ー", "ー"},
		{"abc", "abc"},
		{"あいう", "あいう"},
	}
	for _, tt := range tests {
		if got := ToHiragana(tt.in); got != tt.out {
			t.Errorf("ToHiragana(%q) = %q; want %q", tt.in, got, tt.out)
		}
	}
}
