package db

// Value kinds stored in entry_values.
const (
	KindMeaning = "meaning"
	KindExample = "example"
	KindNote    = "note"
)

// EntryRow is an indexed entry.
type EntryRow struct {
	ID       int64
	Language string
	Headword string
	// Tags holds the space separated tag codes.
	Tags    string
	SortKey string
	Initial string
	// Line is the entry rendered in the file format, empty when the entry
	// cannot be rendered.
	Line string
}

// Query selects entries in Search. Zero fields do not filter.
type Query struct {
	Language string
	// Text matches headwords, sort keys and meanings, ignoring case.
	Text string
	// Initial matches the first letter of the sort key, ignoring case.
	Initial string
	// Tag requires a tag code, for example "n" or "v".
	Tag   string
	Limit int
}
