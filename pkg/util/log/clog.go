// Go support for leveled logs, analogous to https://code.google.com/p/google-clog/
//
// Copyright 2013 Google Inc. All Rights Reserved.
// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// Severity aliases the severity type so that callers only need
// to import this package.
type Severity = severity.Severity

// loggingT collects all the global state of the logging setup.
//
// The shell only ever logs to stderr; log entries below the stderr
// threshold are discarded.
type loggingT struct {
	stderrThreshold atomic.Int32
	verbosity       atomic.Int32
	redactable      atomic.Bool
	noColor         atomic.Bool

	mu struct {
		sync.Mutex
		// out is where log entries are written.
		out io.Writer
		// exitOverride, if set, is called instead of os.Exit
		// on a Fatal entry.
		exitOverride struct {
			f         func(int)
			hideStack bool
		}
	}
}

var logging loggingT

func init() {
	logging.stderrThreshold.Store(int32(severity.WARNING))
	logging.mu.out = OrigStderr
}

const (
	tracebackNone = iota
	tracebackSingle
	tracebackAll
)

// Obey the GOTRACEBACK environment variable for determining which stacks to
// output during a log.Fatal.
var traceback = func() int {
	switch os.Getenv("GOTRACEBACK") {
	case "none":
		return tracebackNone
	case "single", "":
		return tracebackSingle
	default: // "all", "system", "crash"
		return tracebackAll
	}
}()

// formatHeader formats a log header as defined by the C++ implementation.
// It writes into buf:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line
func formatHeader(buf *bytes.Buffer, s Severity, now time.Time, file string, line int, colors bool) {
	if colors {
		writeSeverityColor(buf, s)
	}
	buf.WriteByte(s.Char())
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	twoDigits(buf, int(year)-2000)
	twoDigits(buf, int(month))
	twoDigits(buf, day)
	if colors {
		writeTimeColor(buf)
	}
	buf.WriteByte(' ')
	twoDigits(buf, hour)
	buf.WriteByte(':')
	twoDigits(buf, minute)
	buf.WriteByte(':')
	twoDigits(buf, second)
	buf.WriteByte('.')
	nDigits(buf, 6, now.Nanosecond()/1000)
	buf.WriteByte(' ')
	buf.WriteString(file)
	buf.WriteByte(':')
	nDigits(buf, 0, line)
	if colors {
		writeResetColor(buf)
	}
	// Extra space between the header and the actual message for scannability.
	buf.WriteString("  ")
}

const digits = "0123456789"

// twoDigits formats a zero-prefixed two-digit integer.
func twoDigits(buf *bytes.Buffer, d int) {
	buf.WriteByte(digits[(d/10)%10])
	buf.WriteByte(digits[d%10])
}

// nDigits formats an integer zero-padded to at least n digits.
func nDigits(buf *bytes.Buffer, n, d int) {
	if d < 0 {
		d = 0
	}
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[d%10]
		d /= 10
		if d == 0 {
			break
		}
	}
	for len(tmp)-i < n {
		i--
		tmp[i] = '0'
	}
	buf.Write(tmp[i:])
}

// outputLogEntry formats and writes one entry. On a fatal entry it
// also dumps stacks and terminates the process.
func (l *loggingT) outputLogEntry(s Severity, file string, line int, msg string) {
	if s < Severity(l.stderrThreshold.Load()) && s != severity.FATAL {
		return
	}

	l.mu.Lock()
	var buf bytes.Buffer
	formatHeader(&buf, s, time.Now(), file, line, l.useColorsLocked())
	buf.WriteString(msg)
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	exitFn := l.mu.exitOverride.f
	if s == severity.FATAL && !l.mu.exitOverride.hideStack {
		switch traceback {
		case tracebackSingle:
			buf.Write(getStacks(false))
		case tracebackAll:
			buf.Write(getStacks(true))
		}
	}
	// Errors writing to stderr cannot be reported anywhere.
	_, _ = l.mu.out.Write(buf.Bytes())
	l.mu.Unlock()

	if s == severity.FATAL {
		if exitFn != nil {
			exitFn(1)
			return
		}
		os.Exit(1)
	}
}

// useColorsLocked determines whether entries written to the
// current output should carry color escapes.
func (l *loggingT) useColorsLocked() bool {
	if l.noColor.Load() {
		return false
	}
	f, ok := l.mu.out.(*os.File)
	return ok && stderrIsTerminal(f)
}

// getStacks is a wrapper for runtime.Stack that attempts to recover the data
// for all goroutines.
func getStacks(all bool) []byte {
	n := 10000
	if all {
		n = 100000
	}
	var trace []byte
	for i := 0; i < 5; i++ {
		trace = make([]byte, n)
		nbytes := runtime.Stack(trace, all)
		if nbytes < len(trace) {
			return trace[:nbytes]
		}
		n *= 2
	}
	return trace
}

// callerFile returns the base name and line of the caller depth
// frames above the logging entry point.
func callerFile(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 1
	}
	return filepath.Base(file), line
}

// V returns true if the logging verbosity is set to the specified
// level or higher.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}
