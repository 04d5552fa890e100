// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

// SetStderrThreshold configures the minimum severity of entries
// copied to stderr.
func SetStderrThreshold(s Severity) {
	logging.stderrThreshold.Store(int32(s))
}

// StderrThreshold returns the current stderr threshold.
func StderrThreshold() Severity {
	return Severity(logging.stderrThreshold.Load())
}

// SetVerbosity sets the level checked by V().
func SetVerbosity(level int32) {
	logging.verbosity.Store(level)
}

// SetRedactable controls whether redaction markers are kept in
// log entries.
func SetRedactable(redactable bool) {
	logging.redactable.Store(redactable)
}

// SetNoColor disables color escapes in log entries even when
// stderr is a terminal.
func SetNoColor(noColor bool) {
	logging.noColor.Store(noColor)
}
