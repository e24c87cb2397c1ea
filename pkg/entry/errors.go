package entry

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below unwrap to one of these so callers
// can match with errors.Is without caring about the details.
var (
	ErrLanguage      = errors.New("unsupported language")
	ErrParse         = errors.New("malformed line")
	ErrSort          = errors.New("no sortable part")
	ErrTag           = errors.New("invalid tag combination")
	ErrEmptyHeadword = errors.New("headword must be non-empty")

	// ErrSeparatorInValue is returned by Line when a value contains the
	// field separator and the line could not be parsed back.
	ErrSeparatorInValue = errors.New("value contains the field separator")
	// ErrLineBreakInValue is returned by Line when a value contains a line
	// break, which would split the entry over several lines.
	ErrLineBreakInValue = errors.New("value contains a line break")
)

// LanguageError is returned when a language code is not in the supported set.
type LanguageError struct {
	Code string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("language %q is not supported", e.Code)
}

func (e *LanguageError) Unwrap() error { return ErrLanguage }

// ParseError is returned when a line does not split into the expected
// number of fields.
type ParseError struct {
	Line      string
	Separator string
	Want      int
	Got       int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("found %d fields using sep=%q, want %d: %q", e.Got, e.Separator, e.Want, e.Line)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// SortError is returned when a headword has no part that can be alphabetized.
type SortError struct {
	Headword string
}

func (e *SortError) Error() string {
	return fmt.Sprintf("unable to determine the initial for %q", e.Headword)
}

func (e *SortError) Unwrap() error { return ErrSort }

// TagError is returned when gender or number markers are present on an entry
// that is not a noun.
type TagError struct {
	Tags TagSet
}

func (e *TagError) Error() string {
	return fmt.Sprintf("only nouns take gender and number tags, got [%s]", e.Tags.String())
}

func (e *TagError) Unwrap() error { return ErrTag }
