// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/cli/clierror"
	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/spf13/cobra"
)

// Main is the entry point for the sqlsh binary.
func Main() {
	exit.WithCode(doMain(os.Args[1:]))
}

// doMain runs the command and converts its result to an exit code.
// Errors are printed here, except those that were already reported
// to the user when they occurred.
func doMain(args []string) exit.Code {
	err := Run(args)
	if err == nil {
		return exit.Success()
	}
	if clierror.GetSeverity(err) != severity.NONE {
		clierror.OutputError(stderr, err, false /* verbose */)
	}
	if log.V(1) {
		_ = clierror.CheckAndMaybeLog(err, log.Logf)
	}
	return clierror.GetExitCode(err)
}

var sqlshCmd = &cobra.Command{
	Use:   "sqlsh [options] FILENAME [SQL]",
	Short: "command-line interface for SQLite databases",
	Long: `
Open the SQLite database FILENAME, creating it if it does not exist,
and read SQL statements and meta-commands from the standard input.
Enter ".help" for the list of meta-commands.

If SQL is given, it is executed instead of reading the standard
input. If it starts with a dot, it is interpreted as a meta-command.
`,
	Args:          usageArgs(cobra.RangeArgs(1, 2)),
	RunE:          runShell,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// usageHint is attached to command-line usage errors.
const usageHint = `Run "sqlsh --help" for usage.`

// usageArgs decorates the errors of an argument validator with a
// usage hint.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return errors.WithHint(err, usageHint)
		}
		return nil
	}
}

func init() {
	cobra.EnableCommandSorting = false

	sqlshCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WithHint(err, usageHint)
	})
}

// Run parses the command line and runs the shell.
func Run(args []string) error {
	sqlshCmd.SetArgs(args)
	sqlshCmd.SetOut(stdout)
	sqlshCmd.SetErr(stderr)
	return sqlshCmd.ExecuteContext(context.Background())
}
