// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import (
	"context"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"
	"zombiezen.com/go/sqlite"
)

// IsComplete reports whether sql ends with a complete SQL
// statement: a semicolon outside of string literals, identifiers,
// comments and trigger bodies.
//
// Failing to allocate the text for the engine is fatal.
func IsComplete(sql string) bool {
	tls := libc.NewTLS()
	defer tls.Close()

	csql, err := libc.CString(sql)
	if err != nil {
		log.Fatalf(context.Background(), "out of memory: %v", err)
		return false
	}
	defer libc.Xfree(tls, csql)

	return lib.Xsqlite3_complete(tls, csql) != 0
}

// hasStatementText reports whether s contains anything besides
// whitespace, semicolons and comments.
func hasStatementText(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ';':
		case c == '-' && i+1 < len(s) && s[i+1] == '-':
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				return false
			}
			i += nl
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return false
			}
			i += end + 3
		default:
			return true
		}
	}
	return false
}

// driverPrefix matches the "sqlite: <operation>: " annotation the
// driver puts in front of engine messages.
var driverPrefix = regexp.MustCompile(`^sqlite:\s*([a-z_]+:\s*)?`)

// resultCodeText returns the engine's description of code, such as
// "SQL logic error" for the generic error code.
func resultCodeText(code sqlite.ResultCode) string {
	tls := libc.NewTLS()
	defer tls.Close()
	return libc.GoString(lib.Xsqlite3_errstr(tls, int32(code)))
}

// ErrorMessage returns the message reported by the engine for err,
// without the driver's annotations and the result code description.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	code := sqlite.ErrCode(err)
	if code == sqlite.ResultInterrupt {
		return "interrupted"
	}
	var sqlText string
	var se *stmtError
	if errors.As(err, &se) {
		sqlText = se.sql
	}
	msg := driverPrefix.ReplaceAllString(errors.UnwrapAll(err).Error(), "")
	if text := resultCodeText(code); text != "" {
		if msg == text {
			return msg
		}
		msg = strings.TrimPrefix(msg, text+": ")
	}
	return trimQuerySuffix(msg, sqlText)
}

// trimQuerySuffix removes a trailing " (<sql>)" that echoes the
// statement text back.
func trimQuerySuffix(msg, sqlText string) string {
	if sqlText == "" || !strings.HasSuffix(msg, ")") {
		return msg
	}
	for i := strings.Index(msg, " ("); i >= 0; {
		inner := strings.TrimSpace(msg[i+2 : len(msg)-1])
		if inner != "" && strings.Contains(sqlText, inner) {
			return msg[:i]
		}
		j := strings.Index(msg[i+2:], " (")
		if j < 0 {
			break
		}
		i += j + 2
	}
	return msg
}
