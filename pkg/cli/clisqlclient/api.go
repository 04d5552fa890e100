// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import (
	"context"
	"database/sql"
	"time"
)

// Conn represents a connection to the SQL engine.
type Conn interface {
	// Exec executes every statement in the query text, in order.
	// For each statement that produces result columns, the rows are
	// passed to the visitor one at a time, then Done is called.
	// The query arguments are bound to the first statement only.
	// The visitor may be nil.
	Exec(ctx context.Context, q Query, v RowVisitor) error

	// Query runs the query and returns all the rows as strings.
	// NULL values are returned as empty strings.
	Query(ctx context.Context, q Query) (cols []string, rows [][]string, err error)

	// IsComplete reports whether the text ends with a complete
	// SQL statement, according to the engine's own tokenizer.
	IsComplete(sql string) bool

	// SetBusyTimeout configures how long the engine retries
	// before reporting a locked database.
	SetBusyTimeout(d time.Duration)

	// ServerVersion returns the engine's version string.
	ServerVersion(ctx context.Context) (string, error)

	// Close closes the connection. Subsequent operations fail with
	// ErrConnectionClosed.
	Close() error
}

// RowVisitor receives the rows of a result set, synchronously and in
// order. Done marks the end of a result set; it is called even when
// the result set has no rows, which distinguishes "no rows" from a
// row whose values are all NULL.
type RowVisitor interface {
	Row(cols []string, vals []sql.NullString) error
	Done(cols []string) error
}

// Query is a SQL text with positional arguments.
type Query struct {
	SQL  string
	Args []string
}

// MakeQuery encapsulates a SQL query and its parameters.
func MakeQuery(query string, parameters ...string) Query {
	return Query{SQL: query, Args: parameters}
}
