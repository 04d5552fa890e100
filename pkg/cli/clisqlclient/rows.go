// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import (
	"database/sql"
	"io"

	"zombiezen.com/go/sqlite"
)

// sqlRows iterates over the rows produced by one prepared statement.
type sqlRows struct {
	stmt     *sqlite.Stmt
	colNames []string
}

func newRows(stmt *sqlite.Stmt) *sqlRows {
	return &sqlRows{stmt: stmt}
}

// Columns returns the result column names. It is empty for
// statements that do not produce rows.
func (r *sqlRows) Columns() []string {
	if r.colNames == nil {
		n := r.stmt.ColumnCount()
		r.colNames = make([]string, n)
		for i := 0; i < n; i++ {
			r.colNames[i] = r.stmt.ColumnName(i)
		}
	}
	return r.colNames
}

// Next steps the statement and populates values with the text form
// of the next row. It returns io.EOF after the last row.
func (r *sqlRows) Next(values []sql.NullString) error {
	hasRow, err := r.stmt.Step()
	if err != nil {
		return err
	}
	if !hasRow {
		return io.EOF
	}
	for i := range values {
		if r.stmt.ColumnType(i) == sqlite.TypeNull {
			values[i] = sql.NullString{}
			continue
		}
		values[i] = sql.NullString{String: r.stmt.ColumnText(i), Valid: true}
	}
	return nil
}

// Close finalizes the statement.
func (r *sqlRows) Close() error {
	return r.stmt.Finalize()
}
