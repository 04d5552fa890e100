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
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package log

import (
	"bytes"
	"os"

	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/cockroachdb/ttycolor"
	"github.com/mattn/go-isatty"
)

// stderrIsTerminal determines whether f is a character device that
// can render color escapes.
func stderrIsTerminal(f *os.File) bool {
	return ttycolor.StderrProfile != nil &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func writeSeverityColor(buf *bytes.Buffer, s Severity) {
	cp := ttycolor.StderrProfile
	switch s {
	case severity.INFO:
		buf.Write(cp[ttycolor.Cyan])
	case severity.WARNING:
		buf.Write(cp[ttycolor.Yellow])
	default:
		buf.Write(cp[ttycolor.Red])
	}
}

func writeTimeColor(buf *bytes.Buffer) {
	buf.Write(ttycolor.StderrProfile[ttycolor.Gray])
}

func writeResetColor(buf *bytes.Buffer) {
	buf.Write(ttycolor.StderrProfile[ttycolor.Reset])
}
