// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clicfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	ctx := Context{IsInteractive: true, TerminalOutput: true}
	ctx.LoadDefaults(f, nil)
	assert.False(t, ctx.IsInteractive)
	assert.False(t, ctx.TerminalOutput)
}
