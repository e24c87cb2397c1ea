package ingest

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/vocab/pkg/db"
	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/entry"
)

func TestIndexer_Index(t *testing.T) {
	a, b := fixture(t)
	dict, _, err := NewLoader().Load(context.Background(), "de", []string{a, b})
	require.NoError(t, err)

	conn, err := db.Open()
	require.NoError(t, err)
	defer conn.Close()

	ix := NewIndexer()
	ix.BatchSize = 1
	n, err := ix.Index(context.Background(), conn, dict)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := db.CountEntries(conn, "de")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rows, err := db.Search(conn, db.Query{Language: "de", Text: "schoolhouse"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "die Schule", rows[0].Headword)
	assert.Equal(t, "Schule", rows[0].SortKey)
	assert.Equal(t, "S", rows[0].Initial)
	assert.Equal(t, "n f", rows[0].Tags)
	assert.Equal(t, "die Schule\tschool<br>schoolhouse\tIch gehe zur Schule.\t\tn.f", rows[0].Line)

	examples, err := db.Values(conn, rows[0].ID, db.KindExample)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ich gehe zur Schule."}, examples)

	// Indexing again is idempotent.
	_, err = ix.Index(context.Background(), conn, dict)
	require.NoError(t, err)
	count, err = db.CountEntries(conn, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIndexer_IndexesUnwritableEntries(t *testing.T) {
	dict := dictionary.New(entry.English)
	for _, e := range []struct {
		word string
		tags entry.TagSet
	}{
		{"lonely", entry.NewTagSet(entry.Feminine)},
		{"...", entry.NewTagSet(entry.Expression)},
	} {
		ent, err := entry.New("en", e.word, e.tags)
		require.NoError(t, err)
		_, err = dict.Add(ent)
		require.NoError(t, err)
	}

	conn, err := db.Open()
	require.NoError(t, err)
	defer conn.Close()

	var logs bytes.Buffer
	ix := NewIndexer()
	ix.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n, err := ix.Index(context.Background(), conn, dict)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := db.Search(conn, db.Query{Language: "en"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	byWord := map[string]db.EntryRow{}
	for _, r := range rows {
		byWord[r.Headword] = r
	}

	assert.Empty(t, byWord["lonely"].Line)
	assert.Equal(t, "L", byWord["lonely"].Initial)
	assert.Equal(t, "...", byWord["..."].SortKey)
	assert.Empty(t, byWord["..."].Initial)
	assert.Equal(t, "...\t\t\t\texpr", byWord["..."].Line)

	assert.Contains(t, logs.String(), `msg="indexing entry without line" headword=lonely`)
	assert.Contains(t, logs.String(), `msg="indexing entry without sort key" headword=...`)
}
