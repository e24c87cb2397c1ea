package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/japaniel/vocab/pkg/db"
	"github.com/japaniel/vocab/pkg/dictionary"
	"github.com/japaniel/vocab/pkg/entry"
)

// Indexer copies a dictionary into the query index.
type Indexer struct {
	BatchSize     int
	FlushInterval time.Duration
	// Logger reports entries indexed without a sort key or line. nil means no logging.
	Logger *slog.Logger
}

// NewIndexer creates an Indexer with default settings.
func NewIndexer() *Indexer {
	return &Indexer{
		BatchSize:     50,
		FlushInterval: 100 * time.Millisecond,
	}
}

// Index writes every entry of dict with its values and returns the number
// of entries committed.
func (ix *Indexer) Index(ctx context.Context, conn *sql.DB, dict *dictionary.Dictionary) (int, error) {
	bw := NewBatchWriter(conn, ix.BatchSize, ix.FlushInterval)
	bw.Logger = ix.Logger

	for _, e := range dict.Entries() {
		if err := ctx.Err(); err != nil {
			bw.Close()
			return bw.Committed(), err
		}
		row := ix.row(e)
		current := e
		err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			id, err := db.UpsertEntry(tx, row)
			if err != nil {
				return err
			}
			values := []struct {
				kind string
				list []string
			}{
				{db.KindMeaning, current.Meanings()},
				{db.KindExample, current.Examples()},
				{db.KindNote, current.Notes()},
			}
			for _, v := range values {
				for i, value := range v.list {
					if err := db.AddValue(tx, id, v.kind, i, value); err != nil {
						return fmt.Errorf("index %q: %w", current.Headword(), err)
					}
				}
			}
			return nil
		})
		if err != nil {
			bw.Close()
			return bw.Committed(), err
		}
	}

	err := bw.Close()
	return bw.Committed(), err
}

func (ix *Indexer) row(e *entry.Entry) db.EntryRow {
	row := db.EntryRow{
		Language: string(e.Language()),
		Headword: e.Headword(),
		Tags:     e.Tags().String(),
	}
	key, err := e.SortKey()
	if err == nil {
		row.Initial, err = e.Initial()
	}
	if err != nil {
		// Still searchable by text, sorted by headword.
		ix.debug("indexing entry without sort key", e, err)
		key = e.Headword()
	}
	row.SortKey = key

	line, err := e.Line()
	if err != nil {
		// Search prints the headword instead.
		ix.debug("indexing entry without line", e, err)
	}
	row.Line = line
	return row
}

func (ix *Indexer) debug(msg string, e *entry.Entry, err error) {
	if ix.Logger != nil {
		ix.Logger.Debug(msg, "headword", e.Headword(), "error", err)
	}
}
