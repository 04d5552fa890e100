// Copyright 2014 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// This is the entry point for the sqlsh binary.
package main

import "github.com/cockroachdb/sqlsh/pkg/cli"

func main() {
	cli.Main()
}
