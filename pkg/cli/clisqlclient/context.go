// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlclient

import "github.com/cockroachdb/sqlsh/pkg/cli/clicfg"

// Context represents configuration for opening the database.
// (Note: the execution of SQL queries and presenting results
// is configured via a separate exec configuration.)
type Context struct {
	// CliCtx links this connection context to a CLI configuration
	// environment.
	CliCtx *clicfg.Context

	// ReadOnly, when set, opens the database read-only from the start.
	ReadOnly bool
}

// IsInteractive returns true if the connection configuration
// is for an interactive session. This exposes the field
// from clicfg.Context if available.
func (sqlConnCtx *Context) IsInteractive() bool {
	return sqlConnCtx.CliCtx != nil && sqlConnCtx.CliCtx.IsInteractive
}
