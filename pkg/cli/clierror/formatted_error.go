// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// OutputError prints out an error object on the given writer.
//
// The message is printed after an "Error: " prefix. Details and hints
// attached with errors.WithDetail / errors.WithHint are printed
// on separate lines. When verbose is set, the full error chain is
// printed as well.
func OutputError(w io.Writer, err error, verbose bool) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if d := errors.FlattenDetails(err); d != "" {
		fmt.Fprintf(w, "DETAIL: %s\n", strings.TrimSpace(d))
	}
	if h := errors.FlattenHints(err); h != "" {
		fmt.Fprintf(w, "HINT: %s\n", strings.TrimSpace(h))
	}
	if verbose {
		fmt.Fprintf(w, "%+v\n", err)
	}
}
