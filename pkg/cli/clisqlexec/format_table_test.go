// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"database/sql"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	datadriven.RunTest(t, "testdata/render", func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "render" {
			d.Fatalf(t, "unknown command: %s", d.Cmd)
		}
		ctx := NewContext()
		var mode, table string
		for _, arg := range d.CmdArgs {
			val := ""
			if len(arg.Vals) > 0 {
				val = arg.Vals[0]
			}
			switch arg.Key {
			case "mode":
				mode = val
			case "table":
				table = val
			case "header":
				ctx.ShowHeader = true
			case "null":
				ctx.SetNullValue(val)
			case "sep":
				ctx.SetSeparator(val)
			case "width":
				for i, v := range arg.Vals {
					w, err := strconv.Atoi(v)
					require.NoError(t, err)
					ctx.SetColumnWidth(i, w)
				}
			default:
				d.Fatalf(t, "unknown argument: %s", arg.Key)
			}
		}
		if mode != "" {
			if mode == "semi" {
				ctx.Format = SemiFormat{}
			} else {
				f, err := ParseFormat(mode, table)
				require.NoError(t, err)
				ctx.Format = f
			}
		}

		var buf strings.Builder
		f := NewRowFormatter(&buf, ctx)
		var cols []string
		for _, line := range strings.Split(d.Input, "\n") {
			if line == ";" {
				require.NoError(t, f.Done(cols))
				cols = nil
				continue
			}
			fields := strings.Split(line, "|")
			if cols == nil {
				cols = fields
				continue
			}
			require.NoError(t, f.Row(cols, parseRow(fields)))
		}
		if cols != nil {
			require.NoError(t, f.Done(cols))
		}
		return buf.String()
	})
}

func parseRow(fields []string) []sql.NullString {
	vals := make([]sql.NullString, len(fields))
	for i, s := range fields {
		if s != `\N` {
			vals[i] = sql.NullString{String: s, Valid: true}
		}
	}
	return vals
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", w-len(s))
}

func TestRenderColumn(t *testing.T) {
	render := func(ctx *Context, cols []string, rows ...[]sql.NullString) string {
		var buf strings.Builder
		f := NewRowFormatter(&buf, ctx)
		for _, r := range rows {
			require.NoError(t, f.Row(cols, r))
		}
		require.NoError(t, f.Done(cols))
		return buf.String()
	}
	one := sql.NullString{String: "1", Valid: true}

	t.Run("configured width", func(t *testing.T) {
		ctx := NewContext()
		ctx.Format = ColumnFormat{}
		ctx.ShowHeader = true
		ctx.SetColumnWidth(0, 11)
		out := render(ctx, []string{"a", "b"}, []sql.NullString{one, {}})
		expected := pad("a", 11) + "  " + pad("b", 10) + "\n" +
			strings.Repeat("-", 11) + "  " + strings.Repeat("-", 10) + "\n" +
			pad("1", 11) + "  " + pad("", 10) + "\n"
		assert.Equal(t, expected, out)
	})

	t.Run("zero rows", func(t *testing.T) {
		ctx := NewContext()
		ctx.Format = ColumnFormat{}
		ctx.ShowHeader = true
		out := render(ctx, []string{"name"})
		assert.Equal(t, pad("name", 10)+"\n"+strings.Repeat("-", 10)+"\n", out)

		ctx.ShowHeader = false
		assert.Equal(t, "", render(ctx, []string{"name"}))
	})

	t.Run("widths fixed on first row", func(t *testing.T) {
		ctx := NewContext()
		ctx.Format = ColumnFormat{}
		long := sql.NullString{String: "abcdefghijklmnop", Valid: true}
		longer := sql.NullString{String: "abcdefghijklmnopqrstuvwxyz", Valid: true}
		out := render(ctx, []string{"x"}, []sql.NullString{long}, []sql.NullString{longer})
		assert.Equal(t, long.String+"\n"+long.String+"\n", out)
	})

	t.Run("null placeholder sizes width", func(t *testing.T) {
		ctx := NewContext()
		ctx.Format = ColumnFormat{}
		ctx.SetNullValue("<<<absent value>>>")
		out := render(ctx, []string{"x", "y"}, []sql.NullString{{}, one})
		assert.Equal(t, "<<<absent value>>>  "+pad("1", 10)+"\n", out)
	})

	t.Run("columns past the configurable range", func(t *testing.T) {
		ctx := NewContext()
		ctx.Format = ColumnFormat{}
		ctx.ShowHeader = true
		cols := make([]string, MaxColumnWidths+1)
		vals := make([]sql.NullString, len(cols))
		for i := range cols {
			cols[i] = "c"
			vals[i] = one
		}
		last := "a_long_column_name_here"
		cols[MaxColumnWidths] = last
		vals[MaxColumnWidths] = sql.NullString{String: "abcdefghijklmnop", Valid: true}

		lines := strings.Split(render(ctx, cols, vals), "\n")
		require.Len(t, lines, 4)
		// The header keeps its derived width; rule and data cells use
		// the default width.
		assert.True(t, strings.HasSuffix(lines[0], pad("c", 10)+"  "+last), lines[0])
		assert.True(t, strings.HasSuffix(lines[1], "  "+strings.Repeat("-", 10)), lines[1])
		assert.True(t, strings.HasSuffix(lines[2], pad("1", 10)+"  abcdefghij"), lines[2])
	})

	t.Run("explain layout", func(t *testing.T) {
		ctx := NewContext()
		ctx.SetExplain(true)
		cols := []string{"addr", "opcode", "p1", "p2", "p3"}
		out := render(ctx, cols)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, pad("addr", 4)+"  "+pad("opcode", 12)+"  "+pad("p1", 10)+"  "+pad("p2", 10)+"  "+pad("p3", 35), lines[0])
		assert.Equal(t, 4+12+10+10+35+4*2, len(lines[1]))
	})
}

// extractInsertValues parses the VALUES list of one rendered INSERT
// statement back into values.
func extractInsertValues(t *testing.T, stmt, table string) []sql.NullString {
	t.Helper()
	prefix := "INSERT INTO " + table + " VALUES("
	require.True(t, strings.HasPrefix(stmt, prefix), stmt)
	require.True(t, strings.HasSuffix(stmt, ");\n"), stmt)
	s := stmt[len(prefix) : len(stmt)-len(");\n")]

	var vals []sql.NullString
	for len(s) > 0 {
		var v sql.NullString
		if s[0] == '\'' {
			var buf strings.Builder
			i := 1
			for {
				require.Less(t, i, len(s), "unterminated literal in %q", stmt)
				if s[i] == '\'' {
					if i+1 < len(s) && s[i+1] == '\'' {
						buf.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				buf.WriteByte(s[i])
				i++
			}
			v = sql.NullString{String: buf.String(), Valid: true}
			s = s[i:]
		} else {
			end := strings.IndexByte(s, ',')
			if end < 0 {
				end = len(s)
			}
			if tok := s[:end]; tok != "NULL" {
				require.True(t, IsNumeric(tok), "unquoted non-numeric %q", tok)
				v = sql.NullString{String: tok, Valid: true}
			}
			s = s[end:]
		}
		vals = append(vals, v)
		if len(s) > 0 {
			require.Equal(t, byte(','), s[0])
			s = s[1:]
		}
	}
	return vals
}

func TestInsertRoundTrip(t *testing.T) {
	rows := [][]sql.NullString{
		{{String: "1", Valid: true}, {String: "hello", Valid: true}, {}},
		{{String: "it's", Valid: true}, {String: "''", Valid: true}, {String: "a,b", Valid: true}},
		{{String: "-3.25e+10", Valid: true}, {String: "1e", Valid: true}, {String: "", Valid: true}},
		{{String: "NULL", Valid: true}, {String: "x\ny", Valid: true}, {String: "0x10", Valid: true}},
	}
	cols := []string{"a", "b", "c"}
	table := QuoteIdent("my table")
	ctx := NewContext().WithFormat(InsertFormat{Table: table})
	for _, row := range rows {
		var buf strings.Builder
		f := NewRowFormatter(&buf, ctx)
		require.NoError(t, f.Row(cols, row))
		require.NoError(t, f.Done(cols))
		assert.Equal(t, row, extractInsertValues(t, buf.String(), table))
	}
}

func TestRowWithoutValues(t *testing.T) {
	ctx := NewContext()
	ctx.SetNullValue("N")
	var buf strings.Builder
	f := NewRowFormatter(&buf, ctx)
	require.NoError(t, f.Row([]string{"a", "b"}, nil))
	assert.Equal(t, "N|N\n", buf.String())

	require.Error(t, f.Row([]string{"a"}, parseRow([]string{"1", "2"})))
}
