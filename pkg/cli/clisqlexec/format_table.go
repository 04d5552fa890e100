// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"bufio"
	"database/sql"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// defaultColumnWidth is the minimum auto-sized width of a column, and
// the width of columns past MaxColumnWidths.
const defaultColumnWidth = 10

// RowFormatter renders the rows of one submission to a writer,
// according to the display settings of a Context. The submission may
// contain several statements: the header is printed and the column
// widths are fixed once per RowFormatter, on the first row or, if the
// first result set is empty, at its end.
//
// RowFormatter implements clisqlclient.RowVisitor.
type RowFormatter struct {
	w   *bufio.Writer
	ctx *Context

	// rowCount counts the rendering passes. It is zero until the
	// header/width pass has run.
	rowCount int

	actualWidths [MaxColumnWidths]int
}

// NewRowFormatter creates a RowFormatter that writes to w. ctx is read
// on every row, but is not modified.
func NewRowFormatter(w io.Writer, ctx *Context) *RowFormatter {
	return &RowFormatter{w: bufio.NewWriter(w), ctx: ctx}
}

// Row renders one row.
func (f *RowFormatter) Row(cols []string, vals []sql.NullString) error {
	if vals == nil {
		vals = make([]sql.NullString, len(cols))
	}
	if len(vals) != len(cols) {
		return errors.AssertionFailedf("row has %d values for %d columns", len(vals), len(cols))
	}
	f.render(cols, vals)
	return f.w.Flush()
}

// Done marks the end of a result set. If no row was rendered yet, it
// renders the header of the formats that have one.
func (f *RowFormatter) Done(cols []string) error {
	if f.rowCount == 0 {
		f.render(cols, nil)
	}
	return f.w.Flush()
}

// render dispatches on the display format. A nil vals requests the
// header pass only.
func (f *RowFormatter) render(cols []string, vals []sql.NullString) {
	switch t := f.ctx.Format.(type) {
	case LineFormat:
		f.renderLine(cols, vals)
	case ColumnFormat:
		f.renderColumn(cols, vals)
	case SemiFormat:
		f.renderList(cols, vals, ";\n")
	case HTMLFormat:
		f.renderHTML(cols, vals)
	case InsertFormat:
		f.renderInsert(t.Table, vals)
	default:
		f.renderList(cols, vals, "\n")
	}
}

func (f *RowFormatter) renderLine(cols []string, vals []sql.NullString) {
	if vals == nil {
		return
	}
	w := 5
	for _, c := range cols {
		if len(c) > w {
			w = len(c)
		}
	}
	if f.rowCount > 0 {
		f.w.WriteByte('\n')
	}
	f.rowCount++
	for i, c := range cols {
		f.w.WriteString(padLeft(c, w))
		f.w.WriteString(" = ")
		f.w.WriteString(displayValue(vals[i], f.ctx.NullValue()))
		f.w.WriteByte('\n')
	}
}

// columnWidth returns the width used for column i after the first pass.
func (f *RowFormatter) columnWidth(i int) int {
	if i < MaxColumnWidths {
		return f.actualWidths[i]
	}
	return defaultColumnWidth
}

func (f *RowFormatter) renderColumn(cols []string, vals []sql.NullString) {
	if f.rowCount == 0 {
		f.rowCount++
		// Columns past the configurable range get a derived header
		// width, while their rule and data cells use the default width.
		headerWidths := make([]int, len(cols))
		for i, c := range cols {
			w := 0
			if i < MaxColumnWidths {
				w = f.ctx.ColumnWidths[i]
			}
			if w <= 0 {
				w = len(c)
				if w < defaultColumnWidth {
					w = defaultColumnWidth
				}
				v := f.ctx.NullValue()
				if vals != nil {
					v = displayValue(vals[i], v)
				}
				if len(v) > w {
					w = len(v)
				}
			}
			headerWidths[i] = w
			if i < MaxColumnWidths {
				f.actualWidths[i] = w
			}
		}
		if f.ctx.ShowHeader {
			for i, c := range cols {
				f.writeCell(padRight(c, headerWidths[i]), i == len(cols)-1)
			}
			for i := range cols {
				f.writeCell(strings.Repeat("-", f.columnWidth(i)), i == len(cols)-1)
			}
		}
	}
	if vals == nil {
		return
	}
	for i, v := range getRowStrings(vals, f.ctx.NullValue()) {
		f.writeCell(padRight(v, f.columnWidth(i)), i == len(vals)-1)
	}
}

// writeCell writes one column field followed by the column gap, or by
// a newline for the last column.
func (f *RowFormatter) writeCell(s string, last bool) {
	f.w.WriteString(s)
	if last {
		f.w.WriteByte('\n')
	} else {
		f.w.WriteString("  ")
	}
}

func (f *RowFormatter) renderList(cols []string, vals []sql.NullString, terminator string) {
	sep := f.ctx.Separator()
	if f.rowCount == 0 {
		f.rowCount++
		if f.ctx.ShowHeader {
			f.w.WriteString(strings.Join(cols, sep))
			f.w.WriteByte('\n')
		}
	}
	if vals == nil {
		return
	}
	f.w.WriteString(strings.Join(getRowStrings(vals, f.ctx.NullValue()), sep))
	f.w.WriteString(terminator)
}

func (f *RowFormatter) renderHTML(cols []string, vals []sql.NullString) {
	if f.rowCount == 0 {
		f.rowCount++
		if f.ctx.ShowHeader {
			f.w.WriteString("<TR>")
			for _, c := range cols {
				f.w.WriteString("<TH>")
				f.w.WriteString(escapeHTML(c))
				f.w.WriteString("</TH>")
			}
			f.w.WriteString("</TR>\n")
		}
	}
	if vals == nil {
		return
	}
	f.w.WriteString("<TR>")
	for _, v := range getRowStrings(vals, f.ctx.NullValue()) {
		f.w.WriteString("<TD>")
		f.w.WriteString(escapeHTML(v))
		f.w.WriteString("</TD>\n")
	}
	f.w.WriteString("</TR>\n")
}

func (f *RowFormatter) renderInsert(table string, vals []sql.NullString) {
	if vals == nil {
		return
	}
	f.rowCount++
	f.w.WriteString("INSERT INTO ")
	f.w.WriteString(table)
	f.w.WriteString(" VALUES(")
	for i, v := range vals {
		if i > 0 {
			f.w.WriteByte(',')
		}
		switch {
		case !v.Valid:
			f.w.WriteString("NULL")
		case IsNumeric(v.String):
			f.w.WriteString(v.String)
		default:
			f.w.WriteString(QuoteString(v.String))
		}
	}
	f.w.WriteString(");\n")
}
