// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/sqlsh/pkg/cli/clierror"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlclient"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlshell"
	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/spf13/cobra"
)

// runShell opens the database named by the first argument and runs
// the shell over it. A second argument is run as a one-shot statement
// instead of reading the input.
func runShell(cmd *cobra.Command, args []string) error {
	dbPath := args[0]
	if len(args) > 1 {
		sqlCtx.ExecStmts = args[1:]
	}
	applyDisplayFlags()

	ctx := logtags.AddTag(cmd.Context(), "db", dbPath)
	log.Infof(ctx, "opening database")

	conn, err := clisqlclient.Open(dbPath, &sqlConnCtx)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to open database \"%s\": %s\n", dbPath, clisqlclient.ErrorMessage(err))
		// The error was reported above; only the exit code remains.
		return clierror.NewErrorWithSeverity(err, exit.UnspecifiedError(), severity.NONE)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warningf(ctx, "closing database: %v", err)
		}
	}()

	return clisqlshell.NewShell(&cliCtx, &sqlConnCtx, sqlExecCtx, &sqlCtx, conn).
		RunInteractive(stdin, stdout, stderr)
}
