// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlclient"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlexec"
)

// Catalog queries. Patterns are always bound as parameters.
//
// The dump queries leave out the engine's internal tables, which
// cannot be created by a statement. The sequence table is filled after
// the tables that create it.
const (
	dumpAllQuery = `SELECT name, type, sql FROM sqlite_master
WHERE type!='meta' AND sql NOT NULL AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
ORDER BY substr(type,2,1), name`

	dumpTableQuery = `SELECT name, type, sql FROM sqlite_master
WHERE tbl_name LIKE ? AND type!='meta' AND sql NOT NULL AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
ORDER BY substr(type,2,1), name`

	dumpSequenceAllQuery = `SELECT name, type, sql FROM sqlite_master
WHERE name='sqlite_sequence'`

	dumpSequenceTableQuery = `SELECT name, type, sql FROM sqlite_master
WHERE name='sqlite_sequence' AND tbl_name LIKE ?`

	schemaAllQuery = `SELECT sql FROM sqlite_master
WHERE type!='meta' AND sql NOTNULL
ORDER BY tbl_name, type DESC, name`

	schemaTableQuery = `SELECT sql FROM sqlite_master
WHERE tbl_name LIKE ? AND type!='meta' AND sql NOTNULL
ORDER BY type DESC, name`

	indicesQuery = `SELECT name FROM sqlite_master
WHERE type='index' AND tbl_name LIKE ?
ORDER BY name`

	tablesAllQuery = `SELECT name FROM sqlite_master
WHERE type IN ('table','view')
ORDER BY name`

	tablesPatternQuery = `SELECT name FROM sqlite_master
WHERE type IN ('table','view') AND name LIKE '%'||?||'%'
ORDER BY name`

	// Indexes created implicitly for constraints have no SQL text and
	// cannot be dropped.
	reindexAllQuery = `SELECT name, sql FROM sqlite_master
WHERE type='index' AND sql NOT NULL`

	reindexTableQuery = `SELECT name, sql FROM sqlite_master
WHERE type='index' AND sql NOT NULL AND tbl_name LIKE ?`
)

// masterTableSchema is the definition displayed for the catalog
// table itself, which has no entry of its own.
const masterTableSchema = `CREATE TABLE sqlite_master (
  type text,
  name text,
  tbl_name text,
  rootpage integer,
  sql text
)`

// tablesGridWidth is the width of the .tables listing.
const tablesGridWidth = 80

func (c *cliState) reportCmdError(err error) {
	fmt.Fprintf(c.iCtx.stderr, "Error: %s\n", clisqlclient.ErrorMessage(err))
}

// runCatalogQuery runs q to completion and returns its rows. Collecting
// the rows first lets callers issue further statements for each one.
func (c *cliState) runCatalogQuery(q clisqlclient.Query) (rows [][]string, err error) {
	err = c.runWithInterruptableCtx(func(ctx context.Context) error {
		_, rows, err = c.conn.Query(ctx, q)
		return err
	})
	return rows, err
}

func (c *cliState) handleDump(args []string, nextState cliStateEnum) cliStateEnum {
	w := c.iCtx.queryOutput
	fmt.Fprint(w, "BEGIN TRANSACTION;\n")

	var queries []clisqlclient.Query
	if len(args) == 0 {
		queries = append(queries,
			clisqlclient.MakeQuery(dumpAllQuery),
			clisqlclient.MakeQuery(dumpSequenceAllQuery))
	}
	for _, pattern := range args {
		queries = append(queries, clisqlclient.MakeQuery(dumpTableQuery, pattern))
	}
	for _, pattern := range args {
		queries = append(queries, clisqlclient.MakeQuery(dumpSequenceTableQuery, pattern))
	}

	for _, q := range queries {
		if err := c.dumpObjects(q); err != nil {
			c.reportCmdError(err)
			return nextState
		}
	}
	fmt.Fprint(w, "COMMIT;\n")
	return nextState
}

// dumpObjects prints the definition of every catalog object selected
// by q and, for tables, their contents as INSERT statements. The
// sequence table already exists wherever the dump is replayed, so it
// is emptied instead of created.
func (c *cliState) dumpObjects(q clisqlclient.Query) error {
	rows, err := c.runCatalogQuery(q)
	if err != nil {
		return err
	}
	for _, row := range rows {
		name, objType, def := row[0], row[1], row[2]
		if name == "sqlite_sequence" {
			fmt.Fprint(c.iCtx.queryOutput, "DELETE FROM sqlite_sequence;\n")
		} else {
			fmt.Fprintf(c.iCtx.queryOutput, "%s;\n", def)
		}
		if objType != "table" {
			continue
		}
		quoted := clisqlexec.QuoteIdent(name)
		insertCtx := c.sqlExecCtx.WithFormat(clisqlexec.InsertFormat{Table: quoted})
		if err := c.runQueryWithFormat(insertCtx, clisqlclient.MakeQuery("SELECT * FROM "+quoted)); err != nil {
			return err
		}
	}
	return nil
}

func (c *cliState) handleSchema(args []string, nextState cliStateEnum) cliStateEnum {
	semiCtx := c.sqlExecCtx.WithFormat(clisqlexec.SemiFormat{})
	q := clisqlclient.MakeQuery(schemaAllQuery)
	if len(args) > 0 {
		if strings.EqualFold(args[0], "sqlite_master") {
			cols := []string{"sql"}
			f := clisqlexec.NewRowFormatter(c.iCtx.queryOutput, semiCtx)
			if err := f.Row(cols, []sql.NullString{{String: masterTableSchema, Valid: true}}); err != nil {
				c.reportCmdError(err)
			}
			return nextState
		}
		q = clisqlclient.MakeQuery(schemaTableQuery, args[0])
	}
	if err := c.runQueryWithFormat(semiCtx, q); err != nil {
		c.reportCmdError(err)
	}
	return nextState
}

func (c *cliState) handleIndices(args []string, nextState cliStateEnum) cliStateEnum {
	listCtx := c.sqlExecCtx.WithFormat(clisqlexec.ListFormat{})
	if err := c.runQueryWithFormat(listCtx, clisqlclient.MakeQuery(indicesQuery, args[0])); err != nil {
		c.reportCmdError(err)
	}
	return nextState
}

func (c *cliState) handleTables(args []string, nextState cliStateEnum) cliStateEnum {
	q := clisqlclient.MakeQuery(tablesAllQuery)
	if len(args) > 0 {
		q = clisqlclient.MakeQuery(tablesPatternQuery, args[0])
	}
	rows, err := c.runCatalogQuery(q)
	if err != nil {
		c.reportCmdError(err)
		return nextState
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row[0]
	}
	printTableGrid(c.iCtx.stdout, names)
	return nextState
}

// printTableGrid prints names in columns filling an 80-character line.
// The names are laid out top to bottom, then left to right.
func printTableGrid(w io.Writer, names []string) {
	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	nPrintCol := tablesGridWidth / (maxLen + 2)
	if nPrintCol < 1 {
		nPrintCol = 1
	}
	n := len(names)
	nPrintRow := (n + nPrintCol - 1) / nPrintCol
	var buf strings.Builder
	for i := 0; i < nPrintRow; i++ {
		for j := i + 1; j <= n; j += nPrintRow {
			if j > nPrintRow {
				buf.WriteString("  ")
			}
			buf.WriteString(names[j-1])
			buf.WriteString(strings.Repeat(" ", maxLen-len(names[j-1])))
		}
		buf.WriteByte('\n')
	}
	_, _ = io.WriteString(w, buf.String())
}

func (c *cliState) handleReindex(args []string, nextState cliStateEnum) cliStateEnum {
	q := clisqlclient.MakeQuery(reindexAllQuery)
	if len(args) > 0 {
		q = clisqlclient.MakeQuery(reindexTableQuery, args[0])
	}
	rows, err := c.runCatalogQuery(q)
	if err != nil {
		c.reportCmdError(err)
		return nextState
	}
	for _, row := range rows {
		name := clisqlexec.QuoteString(row[0])
		stmt := fmt.Sprintf("DROP INDEX %s;\n%s;\nREINDEX %s;", name, row[1], name)
		if c.sqlCtx.Echo {
			fmt.Fprintln(c.iCtx.stdout, stmt)
		}
		if err := c.runWithInterruptableCtx(func(ctx context.Context) error {
			return c.conn.Exec(ctx, clisqlclient.MakeQuery(stmt), nil)
		}); err != nil {
			c.reportCmdError(err)
			return nextState
		}
	}
	return nextState
}
