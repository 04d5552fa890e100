// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainSnapshot(t *testing.T) {
	ctx := NewContext()
	ctx.Format = HTMLFormat{}
	ctx.SetColumnWidth(0, 7)
	ctx.SetColumnWidth(99, 3)
	before := *ctx

	ctx.SetExplain(true)
	require.True(t, ctx.ExplainActive())
	assert.Equal(t, ColumnFormat{}, ctx.Format)
	assert.True(t, ctx.ShowHeader)
	assert.Equal(t, []int{4, 12, 10, 10, 35, 0}, ctx.ColumnWidths[:6])
	assert.Equal(t, 0, ctx.ColumnWidths[99])

	// A second activation keeps the first snapshot but re-applies the
	// layout.
	ctx.ShowHeader = false
	ctx.SetColumnWidth(0, 1)
	ctx.SetExplain(true)
	assert.True(t, ctx.ShowHeader)
	assert.Equal(t, 4, ctx.ColumnWidths[0])

	ctx.SetExplain(false)
	require.False(t, ctx.ExplainActive())
	assert.Equal(t, displaySnapshot{}, ctx.savedDisplay)
	if diff := pretty.Diff(before, *ctx); len(diff) > 0 {
		t.Fatalf("display state not restored:\n%s", strings.Join(diff, "\n"))
	}

	// Turning explain off without a snapshot changes nothing.
	ctx.SetExplain(false)
	if diff := pretty.Diff(before, *ctx); len(diff) > 0 {
		t.Fatalf("unexpected change:\n%s", strings.Join(diff, "\n"))
	}
}

func TestSettingsTruncated(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, "|", ctx.Separator())
	assert.Equal(t, "", ctx.NullValue())
	assert.Equal(t, ListFormat{}, ctx.Format)

	ctx.SetSeparator(strings.Repeat("s", 30))
	ctx.SetNullValue(strings.Repeat("n", 19))
	assert.Equal(t, strings.Repeat("s", 19), ctx.Separator())
	assert.Equal(t, strings.Repeat("n", 19), ctx.NullValue())

	ctx.SetColumnWidth(100, 5)
	ctx.SetColumnWidth(-1, 5)
	assert.Equal(t, [MaxColumnWidths]int{}, ctx.ColumnWidths)
}

func TestWithFormat(t *testing.T) {
	ctx := NewContext()
	ctx.ShowHeader = true
	ctx.SetExplain(true)
	n := ctx.WithFormat(SemiFormat{})
	assert.Equal(t, SemiFormat{}, n.Format)
	assert.False(t, n.ShowHeader)
	assert.False(t, n.ExplainActive())
	// The receiver is left untouched.
	assert.Equal(t, ColumnFormat{}, ctx.Format)
	assert.True(t, ctx.ExplainActive())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name, table string
		want        Format
	}{
		{"line", "", LineFormat{}},
		{"LINES", "", LineFormat{}},
		{"l", "", LineFormat{}},
		{"col", "", ColumnFormat{}},
		{"columns", "", ColumnFormat{}},
		{"li", "", LineFormat{}},
		{"lis", "", ListFormat{}},
		{"Html", "", HTMLFormat{}},
		{"ins", "", InsertFormat{Table: "table"}},
		{"insert", "t", InsertFormat{Table: "t"}},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.name, tt.table)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, f, tt.name)
	}

	for _, bad := range []string{"", "semi", "csv", "lists", "htmlx"} {
		_, err := ParseFormat(bad, "")
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}
