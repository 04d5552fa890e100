// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	return makeMessage(ctx, false /* redactable */, format, args)
}

// makeMessage creates a structured log entry: the context tags in
// brackets, then the formatted message. When redactable is set, the
// redaction markers around unsafe arguments are preserved.
func makeMessage(ctx context.Context, redactable bool, format string, args []interface{}) string {
	var buf strings.Builder
	formatTags(ctx, &buf)
	var msg redact.RedactableString
	if len(format) == 0 {
		msg = redact.Sprint(args...)
	} else {
		msg = redact.Sprintf(format, args...)
	}
	if redactable {
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	return buf.String()
}

// formatTags appends the tags of the context as "[k1=v1,k2] ".
func formatTags(ctx context.Context, buf *strings.Builder) {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return
	}
	buf.WriteByte('[')
	for i, t := range tags.Get() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(t.Key())
		if t.Value() != nil {
			buf.WriteByte('=')
			buf.WriteString(t.ValueStr())
		}
	}
	buf.WriteString("] ")
}

// addStructured creates a structured log entry to be written to the
// specified facility of the logger.
func addStructured(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) {
	if ctx == nil {
		panic("nil context")
	}
	file, line := callerFile(depth + 1)
	msg := makeMessage(ctx, logging.redactable.Load(), format, args)
	logging.outputLogEntry(sev, file, line, msg)
}
