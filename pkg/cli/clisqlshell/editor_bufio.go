// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

// bufioReader implements the editor interface for batch input.
type bufioReader struct {
	buf *bufio.Reader
}

func (b *bufioReader) init(win io.Reader, _, _ io.Writer, _ string) (cleanupFn func(), err error) {
	b.buf = bufio.NewReader(win)
	return func() {}, nil
}

var errBufioInterrupted = errors.New("never happens")

func (b *bufioReader) errInterrupted() error {
	return errBufioInterrupted
}

func (b *bufioReader) getLine() (string, error) {
	l, err := b.buf.ReadString('\n')
	// bufio.ReadString() differs from readline.Readline in the handling of
	// EOF. Readline only returns EOF when there is nothing left to read and
	// there is no partial line while bufio.ReadString() returns EOF when the
	// end of input has been reached but will return the non-empty partial line
	// as well. We work around this by converting the bufioReader behavior to
	// match the Readline behavior.
	if err == io.EOF && len(l) != 0 {
		err = nil
	} else if err == nil {
		// From the bufio.ReadString docs: ReadString returns err != nil if and
		// only if the returned data does not end in delim. To match the behavior
		// of readline.Readline, we strip off the trailing delimiter.
		l = l[:len(l)-1]
	}
	return l, err
}

func (b *bufioReader) addHistory(line string) error { return nil }

func (b *bufioReader) canPrompt() bool { return false }

func (b *bufioReader) setPrompt(prompt string) {}
