// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// can also be set (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns a formatted usage string for the flag, including:
// * line wrapping
// * indentation
// * env variable name (if set)
func (f FlagInfo) Usage() string {
	s := "\n" + wrapDescription(f.Description)
	if f.EnvVar != "" {
		s = s + "\nEnvironment variable: " + f.EnvVar
	}
	// github.com/spf13/pflag appends the default value after the usage text. Add
	// additional indentation so the default is aligned with the description.
	return strings.ReplaceAll(s, "\n", "\n        ") + "\n"
}

const maxWidth = 72

// wrapDescription wraps the text in a flag's description to fit in
// maxWidth columns.
func wrapDescription(text string) string {
	var buf strings.Builder
	for i, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		col := 0
		for _, word := range strings.Fields(para) {
			if col > 0 && col+1+len(word) > maxWidth {
				buf.WriteByte('\n')
				col = 0
			} else if col > 0 {
				buf.WriteByte(' ')
				col++
			}
			buf.WriteString(word)
			col += len(word)
		}
	}
	return buf.String()
}

// String implements fmt.Stringer.
func (f FlagInfo) String() string {
	return fmt.Sprintf("--%s", f.Name)
}
