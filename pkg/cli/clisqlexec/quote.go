// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

import "strings"

// IsNumeric returns true if s is a complete numeric literal: an
// optional sign, one or more digits, an optional fraction and an
// optional exponent. Such values are emitted unquoted by the insert
// format.
func IsNumeric(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

// QuoteString wraps s in single quotes, doubling embedded quotes.
func QuoteString(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			buf.WriteByte('\'')
		}
		buf.WriteByte(s[i])
	}
	buf.WriteByte('\'')
	return buf.String()
}

// QuoteIdent returns name unchanged if it is a plain identifier
// (a letter or underscore followed by letters, digits or
// underscores), and the QuoteString form otherwise.
func QuoteIdent(name string) string {
	if needsQuotes(name) {
		return QuoteString(name)
	}
	return name
}

func needsQuotes(name string) bool {
	if name == "" || !(isAlpha(name[0]) || name[0] == '_') {
		return true
	}
	for i := 0; i < len(name); i++ {
		if !(isAlpha(name[i]) || isDigit(name[i]) || name[i] == '_') {
			return true
		}
	}
	return false
}

// escapeHTML escapes the characters that would otherwise start markup
// or an entity. Other characters, quotes included, pass through.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			buf.WriteString("&lt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteByte(s[i])
		}
	}
	return buf.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
