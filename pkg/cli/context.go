// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/sqlsh/pkg/cli/clicfg"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlclient"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlexec"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlshell"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
)

// Standard streams, as variables so that tests can redirect them.
var (
	stdin  = os.Stdin
	stdout = os.Stdout
	stderr = os.Stderr
)

// cliCtx captures the command-line parameters common to all the
// shell components.
var cliCtx = clicfg.Context{}

// sqlConnCtx captures the parameters used to open the database.
var sqlConnCtx = clisqlclient.Context{CliCtx: &cliCtx}

// sqlExecCtx captures the display settings of query results.
var sqlExecCtx = clisqlexec.NewContext()

// sqlCtx captures the configuration of the shell.
var sqlCtx = clisqlshell.Context{}

// logCtx captures the logging flags. They are applied to the log
// package before the command runs.
var logCtx struct {
	stderrThreshold severity.Severity
	verbosity       int
	redactable      bool
	noColor         bool
}

// displayCtx collects the display flags. The mode and header flags
// record the last value given on the command line.
var displayCtx struct {
	format     clisqlexec.Format
	showHeader bool
	separator  string
	nullValue  string
}

// initCLIDefaults sets up the default values for all the contexts.
// Tests call it between command invocations to start from a clean
// slate.
func initCLIDefaults() {
	cliCtx.LoadDefaults(stdin, stdout)

	sqlConnCtx.ReadOnly = false

	*sqlExecCtx = *clisqlexec.NewContext()

	sqlCtx.Echo = false
	sqlCtx.InitFile = ""
	sqlCtx.ExecStmts = nil
	sqlCtx.FS = nil

	logCtx.stderrThreshold = severity.WARNING
	logCtx.verbosity = 0
	logCtx.redactable = false
	logCtx.noColor = false

	displayCtx.format = clisqlexec.ListFormat{}
	displayCtx.showHeader = false
	displayCtx.separator = sqlExecCtx.Separator()
	displayCtx.nullValue = sqlExecCtx.NullValue()
}
