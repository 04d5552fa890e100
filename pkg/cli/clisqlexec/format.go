// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Format identifies how result rows are displayed. The set of
// formats is closed: the implementations below are the only ones.
type Format interface {
	// String returns the name of the format as shown by .show.
	String() string
	isFormat()
}

// LineFormat displays one "name = value" line per column, with a
// blank line between records.
type LineFormat struct{}

// ColumnFormat displays fixed-width, left-aligned columns.
type ColumnFormat struct{}

// ListFormat displays values separated by the configured separator.
type ListFormat struct{}

// SemiFormat is ListFormat with a semicolon terminating each row.
type SemiFormat struct{}

// HTMLFormat displays rows as HTML table rows.
type HTMLFormat struct{}

// InsertFormat displays rows as INSERT statements into Table.
type InsertFormat struct {
	Table string
}

func (LineFormat) String() string   { return "line" }
func (ColumnFormat) String() string { return "column" }
func (ListFormat) String() string   { return "list" }
func (SemiFormat) String() string   { return "semi" }
func (HTMLFormat) String() string   { return "html" }
func (InsertFormat) String() string { return "insert" }

func (LineFormat) isFormat()   {}
func (ColumnFormat) isFormat() {}
func (ListFormat) isFormat()   {}
func (SemiFormat) isFormat()   {}
func (HTMLFormat) isFormat()   {}
func (InsertFormat) isFormat() {}

// DefaultInsertTable is the destination table of InsertFormat when
// none is given.
const DefaultInsertTable = "table"

// ErrInvalidFormat is returned by ParseFormat for an unrecognized
// format name.
var ErrInvalidFormat = errors.New("mode should be one of: column html insert line list")

// ParseFormat resolves a format name as typed by the user. Any
// non-empty prefix of a format name is accepted, case-insensitively.
// The table argument is only used by the insert format; an empty
// table selects DefaultInsertTable.
func ParseFormat(name, table string) (Format, error) {
	name = strings.ToLower(name)
	isPrefix := func(full ...string) bool {
		if name == "" {
			return false
		}
		for _, f := range full {
			if strings.HasPrefix(f, name) {
				return true
			}
		}
		return false
	}
	switch {
	case isPrefix("lines", "line"):
		return LineFormat{}, nil
	case isPrefix("columns", "column"):
		return ColumnFormat{}, nil
	case isPrefix("list"):
		return ListFormat{}, nil
	case isPrefix("html"):
		return HTMLFormat{}, nil
	case isPrefix("insert"):
		if table == "" {
			table = DefaultInsertTable
		}
		return InsertFormat{Table: table}, nil
	}
	return nil, ErrInvalidFormat
}
