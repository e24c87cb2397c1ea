package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertEntry inserts an entry or refreshes the derived columns of the row
// with the same language, headword and tags. It returns the row id.
func UpsertEntry(db DBExecutor, row EntryRow) (int64, error) {
	headword := strings.TrimSpace(row.Headword)
	if headword == "" {
		return 0, fmt.Errorf("headword must be non-empty")
	}

	var id int64
	query := `INSERT INTO entries (language, headword, tags, sort_key, initial, line)
			  VALUES (?, ?, ?, ?, ?, ?)
			  ON CONFLICT(language, headword, tags)
			  DO UPDATE SET
			    sort_key = excluded.sort_key,
			    initial = excluded.initial,
			    line = COALESCE(NULLIF(excluded.line, ''), entries.line)
			  RETURNING id`

	err := db.QueryRow(query, row.Language, headword, row.Tags, row.SortKey, strings.ToUpper(row.Initial), row.Line).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert entry: %w", err)
	}
	return id, nil
}

// AddValue attaches a meaning, example or note to an entry. Values already
// stored for the entry are ignored.
func AddValue(db DBExecutor, entryID int64, kind string, position int, value string) error {
	switch kind {
	case KindMeaning, KindExample, KindNote:
	default:
		return fmt.Errorf("unknown value kind %q", kind)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	_, err := db.Exec(
		`INSERT OR IGNORE INTO entry_values (entry_id, kind, position, value) VALUES (?, ?, ?, ?)`,
		entryID, kind, position, value,
	)
	if err != nil {
		return fmt.Errorf("add %s to entry %d: %w", kind, entryID, err)
	}
	return nil
}

// Values returns the values of one kind attached to an entry, in position order.
func Values(db DBExecutor, entryID int64, kind string) ([]string, error) {
	rows, err := db.Query(
		`SELECT value FROM entry_values WHERE entry_id = ? AND kind = ? ORDER BY position, id`,
		entryID, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// Search returns the entries matching q in alphabetical order. Text matching
// uses LIKE, which folds ASCII letters only.
func Search(db DBExecutor, q Query) ([]EntryRow, error) {
	var (
		where []string
		args  []interface{}
	)
	if q.Language != "" {
		where = append(where, "e.language = ?")
		args = append(args, q.Language)
	}
	if text := strings.TrimSpace(q.Text); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		where = append(where, `(e.headword LIKE ? ESCAPE '\' OR e.sort_key LIKE ? ESCAPE '\' OR EXISTS (
			SELECT 1 FROM entry_values v
			WHERE v.entry_id = e.id AND v.kind = 'meaning' AND v.value LIKE ? ESCAPE '\'))`)
		args = append(args, pattern, pattern, pattern)
	}
	if q.Initial != "" {
		where = append(where, "e.initial = ?")
		args = append(args, strings.ToUpper(q.Initial))
	}
	if q.Tag != "" {
		where = append(where, "(' ' || e.tags || ' ') LIKE ?")
		args = append(args, "% "+q.Tag+" %")
	}

	query := `SELECT e.id, e.language, e.headword, e.tags, e.sort_key, e.initial, e.line FROM entries e`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.sort_key COLLATE NOCASE, e.sort_key, e.headword, e.tags"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	var out []EntryRow
	for rows.Next() {
		var r EntryRow
		if err := rows.Scan(&r.ID, &r.Language, &r.Headword, &r.Tags, &r.SortKey, &r.Initial, &r.Line); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountEntries returns the number of indexed entries for a language, or for
// all languages when language is empty.
func CountEntries(db DBExecutor, language string) (int, error) {
	var n int
	var err error
	if language == "" {
		err = db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	} else {
		err = db.QueryRow(`SELECT COUNT(*) FROM entries WHERE language = ?`, language).Scan(&n)
	}
	return n, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
