package dictionary

import (
	"gopkg.in/yaml.v3"

	"github.com/japaniel/vocab/pkg/entry"
)

// Record is the structured view of an entry used by `vocab show`.
type Record struct {
	Headword string   `yaml:"headword"`
	Language string   `yaml:"language"`
	Tags     string   `yaml:"tags,omitempty"`
	SortKey  string   `yaml:"sort_key,omitempty"`
	Meanings []string `yaml:"meanings,omitempty"`
	Examples []string `yaml:"examples,omitempty"`
	Notes    []string `yaml:"notes,omitempty"`
}

// NewRecord converts e. Invalid tag combinations fall back to the plain tag
// codes and a headword without a sortable part gets no sort key, so every
// entry can be shown.
func NewRecord(e *entry.Entry) Record {
	tags, err := e.FormatTags()
	if err != nil {
		tags = e.Tags().String()
	}
	key, _ := e.SortKey()
	return Record{
		Headword: e.Headword(),
		Language: string(e.Language()),
		Tags:     tags,
		SortKey:  key,
		Meanings: e.Meanings(),
		Examples: e.Examples(),
		Notes:    e.Notes(),
	}
}

// MarshalRecords renders entries as a YAML sequence.
func MarshalRecords(entries []*entry.Entry) ([]byte, error) {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, NewRecord(e))
	}
	return yaml.Marshal(records)
}
