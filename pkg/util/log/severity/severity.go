// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package severity

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity identifies the sort of log: info, warning etc. *Severity
// implements pflag.Value so that it can be used directly as the value
// of a command-line flag.
type Severity int32

// The severities, in order of increasing importance. NONE is only
// meaningful as a threshold: it filters out everything.
const (
	UNKNOWN Severity = iota
	INFO
	WARNING
	ERROR
	FATAL
	NONE
)

var names = []string{
	UNKNOWN: "UNKNOWN",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
	FATAL:   "FATAL",
	NONE:    "NONE",
}

// String implements the fmt.Stringer and pflag.Value interfaces.
func (s Severity) String() string {
	if i := int(s); i >= 0 && i < len(names) {
		return names[i]
	}
	return strconv.FormatInt(int64(s), 10)
}

// Char returns the single-letter abbreviation used in log headers.
func (s Severity) Char() byte {
	switch s {
	case INFO:
		return 'I'
	case WARNING:
		return 'W'
	case ERROR:
		return 'E'
	case FATAL:
		return 'F'
	default:
		return 'U'
	}
}

// Type implements the pflag.Value interface.
func (s *Severity) Type() string { return "<severity>" }

// Set implements the pflag.Value interface. It accepts a severity
// name (case-insensitive), its numeric value, or true/false.
func (s *Severity) Set(value string) error {
	if v, ok := ByName(value); ok {
		*s = v
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return errors.Newf("unknown severity: %q", value)
	}
	if v < int(INFO) || v > int(NONE) {
		return errors.Newf("severity out of range: %d", v)
	}
	*s = Severity(v)
	return nil
}

// ByName attempts to parse the passed in string into a severity
// (i.e. ERROR, INFO). If it succeeds, the returned bool is set to
// true.
func ByName(s string) (Severity, bool) {
	s = strings.ToUpper(s)
	for i, name := range names {
		if i != int(UNKNOWN) && name == s {
			return Severity(i), true
		}
	}
	switch s {
	case "TRUE":
		return INFO, true
	case "FALSE":
		return NONE, true
	}
	return UNKNOWN, false
}
