// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import (
	"database/sql"
	"strings"
)

// getRowStrings converts a row of values to their display strings,
// using nullValue for NULL. A nil row stays nil.
func getRowStrings(vals []sql.NullString, nullValue string) []string {
	if vals == nil {
		return nil
	}
	rowStrings := make([]string, len(vals))
	for i, v := range vals {
		rowStrings[i] = displayValue(v, nullValue)
	}
	return rowStrings
}

func displayValue(v sql.NullString, nullValue string) string {
	if !v.Valid {
		return nullValue
	}
	return v.String
}

// padRight left-aligns s in a field of exactly w bytes, truncating it
// if it is longer.
func padRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

// padLeft right-aligns s in a field of at least w bytes.
func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
