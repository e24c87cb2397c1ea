package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lang, line string) *Entry {
	t.Helper()
	e, err := ParseLine(lang, line, "")
	require.NoError(t, err)
	return e
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	_, err := New("xx", "Haus", NewTagSet(Noun))
	require.ErrorIs(t, err, ErrLanguage)

	var langErr *LanguageError
	require.ErrorAs(t, err, &langErr)
	assert.Equal(t, "xx", langErr.Code)
}

func TestNew_LanguageCodeIsCaseInsensitive(t *testing.T) {
	e, err := New("DE", "laufen", NewTagSet(Verb))
	require.NoError(t, err)
	assert.Equal(t, German, e.Language())
}

func TestNew_EmptyHeadword(t *testing.T) {
	_, err := New("de", "   ", NewTagSet(Noun))
	require.ErrorIs(t, err, ErrEmptyHeadword)
}

func TestNew_DropsBitsOutsideVocabulary(t *testing.T) {
	e, err := New("en", "run", TagSet(1<<15)|NewTagSet(Verb))
	require.NoError(t, err)
	assert.Equal(t, NewTagSet(Verb), e.Tags())
}

func TestEqual_IgnoresListFields(t *testing.T) {
	a, err := New("de", "die Schule", NewTagSet(Noun, Feminine), WithMeanings("school"))
	require.NoError(t, err)
	b, err := New("de", "die Schule", NewTagSet(Feminine, Noun), WithMeanings("schoolhouse"), WithExamples("Ich gehe zur Schule."))
	require.NoError(t, err)
	c, err := New("de", "die Schule", NewTagSet(Noun))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different tags are a different word")
	assert.Equal(t, a.Key(), b.Key())
}

func TestAddMeaning_Dedup(t *testing.T) {
	e, err := New("en", "run", NewTagSet(Verb))
	require.NoError(t, err)

	e.AddMeaning("run")
	e.AddMeaning("run")
	assert.Equal(t, []string{"run"}, e.Meanings())

	e.AddMeaning(" sprint <br>run<br><br>jog ")
	assert.Equal(t, []string{"run", "sprint", "jog"}, e.Meanings())
}

func TestAccessorsReturnCopies(t *testing.T) {
	e, err := New("en", "run", NewTagSet(Verb), WithMeanings("laufen"))
	require.NoError(t, err)

	m := e.Meanings()
	m[0] = "changed"
	assert.Equal(t, []string{"laufen"}, e.Meanings())
}

func TestMerge(t *testing.T) {
	e := mustParse(t, "de", "Schule\tschool\tIch gehe zur Schule.\t\tn.f")
	other := mustParse(t, "de", "die Schule\tschool<br>schoolhouse\tDie Schule ist aus.<br>Ich gehe zur Schule.\tDIN\tn.f")
	// Different headwords: "Schule" and "die Schule" are not the same word.
	require.False(t, e.Equal(other))

	same := mustParse(t, "de", "Schule\tschoolhouse<br>school\tDie Schule ist aus.\tDIN\tn.f")
	e.Merge(same)
	assert.Equal(t, []string{"school", "schoolhouse"}, e.Meanings())
	assert.Equal(t, []string{"Ich gehe zur Schule.", "Die Schule ist aus."}, e.Examples())
	assert.Equal(t, []string{"DIN"}, e.Notes())

	t.Run("idempotent", func(t *testing.T) {
		before := e.String()
		e.Merge(same)
		assert.Equal(t, before, e.String())
	})

	t.Run("no-op on different identity", func(t *testing.T) {
		before := e.String()
		e.Merge(other)
		assert.Equal(t, before, e.String())
		e.Merge(nil)
		assert.Equal(t, before, e.String())
	})
}

func TestString(t *testing.T) {
	e, err := New("en", "run", NewTagSet(Verb), WithMeanings("laufen"), WithNotes("irregular"))
	require.NoError(t, err)
	assert.Equal(t, `Entry(lang=en, word="run", tags=[v], meanings=["laufen"], notes=["irregular"])`, e.String())
}
