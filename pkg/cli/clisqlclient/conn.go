// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"zombiezen.com/go/sqlite"
)

// ErrConnectionClosed is returned by operations on a closed
// connection.
var ErrConnectionClosed = errors.New("connection closed unexpectedly")

type sqliteConn struct {
	conn *sqlite.Conn
	path string
}

var _ Conn = (*sqliteConn)(nil)

// Open opens the database file at path. When the file cannot be
// opened for writing, it is retried read-only and a warning is
// printed. The path ":memory:" opens a private in-memory database.
func Open(path string, connCtx *Context) (Conn, error) {
	if connCtx == nil || !connCtx.ReadOnly {
		conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate|sqlite.OpenURI)
		if err == nil {
			return &sqliteConn{conn: conn, path: path}, nil
		}
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly|sqlite.OpenURI)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if connCtx == nil || !connCtx.ReadOnly {
		fmt.Fprintf(stderr, "Database %q opened READ ONLY!\n", path)
	}
	return &sqliteConn{conn: conn, path: path}, nil
}

// Exec implements the Conn interface.
//
// The statement's context is mapped to the engine's interrupt
// channel: canceling ctx aborts the statement in progress with an
// interrupt error.
func (c *sqliteConn) Exec(ctx context.Context, q Query, v RowVisitor) error {
	if c.conn == nil {
		return ErrConnectionClosed
	}
	defer c.conn.SetInterrupt(c.conn.SetInterrupt(ctx.Done()))

	rest := q.SQL
	args := q.Args
	for hasStatementText(rest) {
		text := rest
		stmt, trailingBytes, err := c.conn.PrepareTransient(rest)
		if err != nil {
			return &stmtError{cause: err, sql: text}
		}
		rest = rest[len(rest)-trailingBytes:]
		if stmt == nil {
			continue
		}
		rows := newRows(stmt)
		err = bindArgs(stmt, args)
		args = nil
		if err == nil {
			err = runRows(rows, v)
		}
		if closeErr := rows.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return &stmtError{cause: err, sql: text}
		}
	}
	return nil
}

// stmtError annotates an engine error with the text that was being
// prepared when it occurred.
type stmtError struct {
	cause error
	sql   string
}

func (e *stmtError) Error() string { return e.cause.Error() }
func (e *stmtError) Unwrap() error { return e.cause }

func bindArgs(stmt *sqlite.Stmt, args []string) error {
	if n := stmt.BindParamCount(); len(args) > n {
		return errors.Newf("too many arguments: %d parameters, %d arguments", n, len(args))
	}
	for i, a := range args {
		stmt.BindText(i+1, a)
	}
	return nil
}

// runRows steps through all the rows of one statement.
func runRows(rows *sqlRows, v RowVisitor) error {
	cols := rows.Columns()
	vals := make([]sql.NullString, len(cols))
	for {
		err := rows.Next(vals)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if v != nil && len(cols) > 0 {
			if err := v.Row(cols, vals); err != nil {
				return err
			}
		}
	}
	if v != nil && len(cols) > 0 {
		return v.Done(cols)
	}
	return nil
}

// Query implements the Conn interface.
func (c *sqliteConn) Query(ctx context.Context, q Query) ([]string, [][]string, error) {
	var g gridCollector
	if err := c.Exec(ctx, q, &g); err != nil {
		return nil, nil, err
	}
	return g.cols, g.rows, nil
}

// gridCollector accumulates the rows of a result into a flat grid
// of strings.
type gridCollector struct {
	cols []string
	rows [][]string
}

func (g *gridCollector) Row(cols []string, vals []sql.NullString) error {
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = v.String
	}
	g.rows = append(g.rows, row)
	return nil
}

func (g *gridCollector) Done(cols []string) error {
	g.cols = append([]string(nil), cols...)
	return nil
}

// IsComplete implements the Conn interface.
func (c *sqliteConn) IsComplete(sql string) bool {
	return IsComplete(sql)
}

// SetBusyTimeout implements the Conn interface.
func (c *sqliteConn) SetBusyTimeout(d time.Duration) {
	if c.conn == nil {
		return
	}
	c.conn.SetBusyTimeout(d)
}

// ServerVersion implements the Conn interface.
func (c *sqliteConn) ServerVersion(ctx context.Context) (string, error) {
	_, rows, err := c.Query(ctx, MakeQuery("SELECT sqlite_version()"))
	if err != nil {
		return "", err
	}
	if len(rows) != 1 || len(rows[0]) != 1 {
		return "", errors.AssertionFailedf("unexpected result for version query: %v", rows)
	}
	return rows[0][0], nil
}

// Close implements the Conn interface.
func (c *sqliteConn) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return errors.Wrapf(err, "closing %s", c.path)
}
