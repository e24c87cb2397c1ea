package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/japaniel/vocab/pkg/entry"
)

func TestMarshalRecords(t *testing.T) {
	e := mustEntry(t, "de", "die schule", entry.NewTagSet(entry.Noun, entry.Feminine),
		entry.WithMeanings("school"), entry.WithNotes("DIN"))

	data, err := MarshalRecords([]*entry.Entry{e})
	require.NoError(t, err)

	var got []Record
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, Record{
		Headword: "die Schule",
		Language: "de",
		Tags:     "n.f",
		SortKey:  "Schule",
		Meanings: []string{"school"},
		Notes:    []string{"DIN"},
	}, got[0])
}

func TestNewRecord_InvalidTags(t *testing.T) {
	e := mustEntry(t, "de", "schön", entry.NewTagSet(entry.Adjective, entry.Feminine))
	assert.Equal(t, "adj f", NewRecord(e).Tags)
}
