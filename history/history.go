// Package history records evaluated statements in a sqlite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded evaluation.
type Entry struct {
	// ID is assigned by Record.
	ID        int64
	Statement string
	// Result is the formatted value, empty if the statement was invalid.
	Result string
	Valid  bool
	// Error describes why an invalid statement was rejected.
	Error string
	At    time.Time
}

// Store is a history database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS evaluations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	statement TEXT NOT NULL,
	result TEXT NOT NULL,
	valid INTEGER NOT NULL,
	error TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// Open opens the database at path, creating it and its table if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history: empty database path")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway; one connection avoids busy errors.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record adds an entry and returns its ID. A zero At is set to the current
// time.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO evaluations (statement, result, valid, error, created_at) VALUES (?, ?, ?, ?, ?)",
		e.Statement, e.Result, e.Valid, e.Error, e.At.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns up to limit entries, newest first. A limit of zero or less
// returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, statement, result, valid, error, created_at FROM evaluations ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var r []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Statement, &e.Result, &e.Valid, &e.Error, &e.At); err != nil {
			return nil, err
		}
		r = append(r, e)
	}
	return r, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
