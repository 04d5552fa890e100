// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"0", true},
		{"123", true},
		{"-1", true},
		{"+1", true},
		{"1.", true},
		{"1.5", true},
		{"1.5e10", true},
		{"1E-3", true},
		{"2e+7", true},
		{"", false},
		{"-", false},
		{".5", false},
		{"1e", false},
		{"1e+", false},
		{"1.5.2", false},
		{"12a", false},
		{" 1", false},
		{"0x10", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumeric(tt.s), "IsNumeric(%q)", tt.s)
	}
}

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"t1", "t1"},
		{"_x", "_x"},
		{"Orders", "Orders"},
		{"my table", "'my table'"},
		{"1abc", "'1abc'"},
		{"it's", "'it''s'"},
		{"a-b", "'a-b'"},
		{"", "''"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteIdent(tt.name), "QuoteIdent(%q)", tt.name)
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, `a &lt;b> &amp; "c"`, escapeHTML(`a <b> & "c"`))
	assert.Equal(t, "plain", escapeHTML("plain"))
}
