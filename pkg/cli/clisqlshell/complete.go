// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import "github.com/chzyer/readline"

// newMetaCommandCompleter completes the names of the meta-commands at
// the start of a line.
func newMetaCommandCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(metaCommands))
	for _, cmd := range metaCommands {
		items = append(items, readline.PcItem("."+cmd.name))
	}
	return readline.NewPrefixCompleter(items...)
}
