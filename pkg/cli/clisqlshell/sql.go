// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/sqlsh/pkg/cli/clicfg"
	"github.com/cockroachdb/sqlsh/pkg/cli/clierror"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlclient"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlexec"
	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/cockroachdb/sqlsh/pkg/util/envutil"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/spf13/afero"
)

const (
	defaultPrompt         = "sqlite> "
	defaultContinuePrompt = "   ...> "

	// maxPromptLen bounds the length of the prompts set with .prompt.
	maxPromptLen = 19

	bannerFmt = "SQLite version %s\nEnter \".help\" for instructions\n"
)

// cliState defines the current state of the CLI during
// command-line processing.
//
// Note: options customizable via meta-commands should be defined in
// sqlExecCtx or sqlCtx instead, so that the configuration remains
// global across multiple instances of cliState (e.g. across file
// inclusion with .read).
type cliState struct {
	cliCtx     *clicfg.Context
	sqlConnCtx *clisqlclient.Context
	sqlExecCtx *clisqlexec.Context
	sqlCtx     *Context
	iCtx       *internalContext

	conn clisqlclient.Conn
	// ins is used to read lines.
	ins editor

	// levels is the number of inclusion recursion levels.
	levels int

	// State
	//
	// lastInputLine is the last valid line obtained from the editor.
	lastInputLine string

	// partialLines is the array of lines accumulated so far in a
	// multi-line entry.
	partialLines []string

	// concatLines is the concatenation of partialLines, computed during
	// doPrepareStatementLine and then reused in doRunStatements().
	concatLines string

	// exitErr defines the error to report to the user upon termination.
	exitErr error
}

// cliStateEnum drives the CLI state machine in doRunShell().
type cliStateEnum int

const (
	cliStart cliStateEnum = iota
	cliStop

	// Just before reading the first line of a potentially multi-line
	// statement.
	cliStartLine

	// Just before reading the 2nd line or after in a multi-line
	// statement.
	cliContinueLine

	// Actually reading the input and checking for input errors.
	cliReadLine

	// Determine to do with the newly input line.
	cliDecidePath

	// Process a meta-command.
	cliHandleCliCmd

	// Concatenate the inputs so far and check whether they form a
	// complete statement.
	cliPrepareStatementLine

	// Actually run the SQL buffered so far.
	cliRunStatement
)

// cmdHistFile is the name of the history file, relative to the home
// directory.
var cmdHistFile = envutil.EnvOrDefaultString("SQLSH_HISTORY_FILE", ".sqlite_history")

// historyWarning rate-limits the warnings about history persistence.
var historyWarning = log.Every(time.Minute)

func (c *cliState) addHistory(line string) {
	if err := c.ins.addHistory(line); err != nil && historyWarning.ShouldLog() {
		log.Warningf(context.TODO(), "cannot save command-line history: %s", err)
		log.Info(context.TODO(), "command-line history will not be saved in this session")
	}
}

func (c *cliState) cliError(nextState cliStateEnum, err error) cliStateEnum {
	clierror.OutputError(c.iCtx.stderr, err, false /* verbose */)
	c.exitErr = err
	return nextState
}

func (c *cliState) doStart(nextState cliStateEnum) cliStateEnum {
	// Common initialization.
	c.partialLines = []string{}

	if c.ins.canPrompt() {
		version, err := c.conn.ServerVersion(context.Background())
		if err != nil {
			version = "unknown"
		}
		fmt.Fprintf(c.iCtx.stdout, bannerFmt, version)
	}

	return nextState
}

func (c *cliState) doStartLine(nextState cliStateEnum) cliStateEnum {
	// Clear the input buffer.
	c.partialLines = c.partialLines[:0]
	c.concatLines = ""

	if c.ins.canPrompt() {
		c.ins.setPrompt(c.iCtx.fullPrompt)
	}

	return nextState
}

func (c *cliState) doContinueLine(nextState cliStateEnum) cliStateEnum {
	if c.ins.canPrompt() {
		c.ins.setPrompt(c.iCtx.continuePrompt)
	}

	return nextState
}

// doReadLine reads a line of input and check the input status. If
// input was successful it populates c.lastInputLine. Otherwise
// c.exitErr is set in some cases and an error/retry state is returned.
func (c *cliState) doReadLine(nextState cliStateEnum) cliStateEnum {
	c.maybeFlushOutput()

	l, err := c.ins.getLine()

	switch {
	case err == nil:

	case errors.Is(err, c.ins.errInterrupted()):
		if l != "" {
			// Ctrl+C after the beginning of a line cancels the current
			// line.
			return cliReadLine
		}
		// Ctrl+C at the beginning of a line cancels the multi-line
		// statement, if any.
		return cliStartLine

	case errors.Is(err, io.EOF):
		if len(c.partialLines) > 0 {
			fmt.Fprintf(c.iCtx.stderr, "Incomplete SQL: %s\n", strings.Join(c.partialLines, "\n"))
		}
		return cliStop

	default:
		// Other errors terminate the shell.
		return c.cliError(cliStop, errors.Wrap(err, "input error"))
	}

	if c.iCtx.interrupted.Load() {
		if !c.ins.canPrompt() {
			// An interrupt abandons batch input at this level. The flag
			// stays set so that enclosing batch levels stop too.
			if len(c.partialLines) > 0 {
				fmt.Fprintf(c.iCtx.stderr, "Incomplete SQL: %s\n", strings.Join(c.partialLines, "\n"))
			}
			c.partialLines = c.partialLines[:0]
			return cliStop
		}
		c.iCtx.interrupted.Store(false)
	}

	if c.ins.canPrompt() && strings.TrimSpace(l) != "" {
		c.addHistory(l)
	}
	if c.sqlCtx.Echo {
		fmt.Fprintln(c.iCtx.stdout, l)
	}

	c.lastInputLine = l
	return nextState
}

// spaceChars are the characters recognized as whitespace by the input
// loop and the meta-command tokenizer.
const spaceChars = " \t\n\v\f\r"

func (c *cliState) doDecidePath() cliStateEnum {
	if len(c.partialLines) == 0 {
		line := strings.TrimLeft(c.lastInputLine, spaceChars)
		if line == "" {
			// Blank lines do not start a statement.
			return cliStartLine
		}
		if line[0] == '.' {
			return cliHandleCliCmd
		}
	}
	return cliPrepareStatementLine
}

func (c *cliState) doPrepareStatementLine(contState, execState cliStateEnum) cliStateEnum {
	c.partialLines = append(c.partialLines, c.lastInputLine)
	c.concatLines = strings.Join(c.partialLines, "\n")

	if !c.conn.IsComplete(c.concatLines) {
		return contState
	}
	return execState
}

func (c *cliState) doRunStatements(nextState cliStateEnum) cliStateEnum {
	if err := c.runQueryAndFormatResults(c.concatLines); err != nil {
		if !c.ins.canPrompt() && !c.sqlCtx.Echo {
			fmt.Fprintln(c.iCtx.stderr, c.concatLines)
		}
		fmt.Fprintf(c.iCtx.stderr, "SQL error: %s\n", clisqlclient.ErrorMessage(err))
	}
	return nextState
}

// runQueryAndFormatResults runs the statements in sql and renders
// their rows to the query output with the session's display settings.
func (c *cliState) runQueryAndFormatResults(sql string) error {
	return c.runQueryWithFormat(c.sqlExecCtx, clisqlclient.MakeQuery(sql))
}

// runQueryWithFormat runs q and renders its rows to the query output
// with the given display settings.
func (c *cliState) runQueryWithFormat(execCtx *clisqlexec.Context, q clisqlclient.Query) error {
	return c.runWithInterruptableCtx(func(ctx context.Context) error {
		return c.conn.Exec(ctx, q, clisqlexec.NewRowFormatter(c.iCtx.queryOutput, execCtx))
	})
}

func (c *cliState) doDecideAfterCmd(state cliStateEnum) cliStateEnum {
	if c.iCtx.quitRequested {
		return cliStop
	}
	return state
}

// NewShell instantiates a cliState.
func NewShell(
	cliCtx *clicfg.Context,
	sqlConnCtx *clisqlclient.Context,
	sqlExecCtx *clisqlexec.Context,
	sqlCtx *Context,
	conn clisqlclient.Conn,
) Shell {
	return newShell(cliCtx, sqlConnCtx, sqlExecCtx, sqlCtx, conn)
}

func newShell(
	cliCtx *clicfg.Context,
	sqlConnCtx *clisqlclient.Context,
	sqlExecCtx *clisqlexec.Context,
	sqlCtx *Context,
	conn clisqlclient.Conn,
) *cliState {
	fs := sqlCtx.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &cliState{
		cliCtx:     cliCtx,
		sqlConnCtx: sqlConnCtx,
		sqlExecCtx: sqlExecCtx,
		sqlCtx:     sqlCtx,
		iCtx: &internalContext{
			fs:             fs,
			fullPrompt:     defaultPrompt,
			continuePrompt: defaultContinuePrompt,
		},
		conn: conn,
	}
}

// RunInteractive implements the Shell interface.
func (c *cliState) RunInteractive(cmdIn, cmdOut, cmdErr *os.File) (exitErr error) {
	finalFn := c.maybeHandleInterrupt()
	defer finalFn()

	// Avoid storing nil *os.File values in the io interfaces below.
	var in io.Reader = os.Stdin
	var out, errOut io.Writer = os.Stdout, log.OrigStderr
	if cmdIn != nil {
		in = cmdIn
	}
	if cmdOut != nil {
		out = cmdOut
	}
	if cmdErr != nil {
		errOut = cmdErr
	}
	return c.doRunShell(cliStart, in, out, errOut)
}

func (c *cliState) doRunShell(state cliStateEnum, cmdIn io.Reader, cmdOut, cmdErr io.Writer) (exitErr error) {
	for {
		if state == cliStop {
			break
		}
		switch state {
		case cliStart:
			defer func() {
				if err := c.closeOutputFile(); err != nil {
					fmt.Fprintf(cmdErr, "warning: closing output file: %v\n", err)
				}
			}()
			cleanupFn, err := c.configurePreShellDefaults(cmdIn, cmdOut, cmdErr)
			defer cleanupFn()
			if err != nil {
				return err
			}
			if c.iCtx.quitRequested {
				return nil
			}
			if len(c.sqlCtx.ExecStmts) > 0 {
				// Single-line sql; run as simple as possible, without noise on stdout.
				return c.runStatements(c.sqlCtx.ExecStmts)
			}

			state = c.doStart(cliStartLine)

		case cliStartLine:
			state = c.doStartLine(cliReadLine)

		case cliContinueLine:
			state = c.doContinueLine(cliReadLine)

		case cliReadLine:
			state = c.doReadLine(cliDecidePath)

		case cliDecidePath:
			state = c.doDecidePath()

		case cliHandleCliCmd:
			state = c.doDecideAfterCmd(c.doHandleCliCmd(cliStartLine))

		case cliPrepareStatementLine:
			state = c.doPrepareStatementLine(cliContinueLine, cliRunStatement)

		case cliRunStatement:
			state = c.doRunStatements(cliStartLine)

		default:
			panic(fmt.Sprintf("unknown state: %d", state))
		}
	}

	return c.exitErr
}

// configurePreShellDefaults should be called after command-line flags
// have been loaded into the cliCtx/sqlCtx and before the shell loop
// starts. It sets up the editor and runs the startup script.
func (c *cliState) configurePreShellDefaults(
	cmdIn io.Reader, cmdOut, cmdErr io.Writer,
) (cleanupFn func(), err error) {
	c.iCtx.stdout = cmdOut
	c.iCtx.stderr = cmdErr
	c.iCtx.queryOutput = cmdOut

	// We only enable history management when the terminal is actually
	// interactive. This saves on memory when e.g. piping a large SQL
	// script through the command-line client.
	useReadline := c.cliCtx.IsInteractive && len(c.sqlCtx.ExecStmts) == 0
	histFile := ""
	if useReadline {
		homeDir, err := envutil.HomeDir()
		if err != nil {
			if log.V(2) {
				log.Warningf(context.TODO(), "cannot retrieve user information: %v", err)
				log.Info(context.TODO(), "cannot load or save the command-line history")
			}
		} else {
			histFile = filepath.Join(homeDir, cmdHistFile)
		}
	}
	c.ins = getEditor(useReadline)
	cleanupFn, err = c.ins.init(cmdIn, cmdOut, cmdErr, histFile)
	if err != nil {
		return cleanupFn, err
	}

	c.runInitFile()
	return cleanupFn, nil
}

// runInitFile runs the startup script, if any, as a nested batch
// input.
func (c *cliState) runInitFile() {
	path := c.sqlCtx.InitFile
	explicit := path != ""
	if !explicit {
		homeDir, err := envutil.HomeDir()
		if err != nil {
			fmt.Fprintf(c.iCtx.stderr, "cannot locate your home directory: %v\n", err)
			return
		}
		path = filepath.Join(homeDir, ".sqliterc")
	}
	f, err := c.iCtx.fs.Open(path)
	if err != nil {
		if explicit {
			fmt.Fprintf(c.iCtx.stderr, "can't open \"%s\"\n", path)
		}
		return
	}
	defer func() { _ = f.Close() }()

	if !explicit && c.cliCtx.IsInteractive {
		fmt.Fprintf(c.iCtx.stderr, "Loading resources from %s\n", path)
	}
	_ = c.runIncludeInternal(cliStart, path, bufio.NewReader(f), c.levels+1)
	c.maybeFlushOutput()
}

// runStatements executes the given one-shot statements. A statement
// error is reported and terminates with a non-zero exit code.
func (c *cliState) runStatements(stmts []string) error {
	for _, stmt := range stmts {
		if strings.HasPrefix(stmt, ".") {
			c.lastInputLine = stmt
			_ = c.doHandleCliCmd(cliStop)
			if c.iCtx.quitRequested {
				break
			}
			continue
		}
		if err := c.runQueryAndFormatResults(stmt); err != nil {
			fmt.Fprintf(c.iCtx.stderr, "SQL error: %s\n", clisqlclient.ErrorMessage(err))
			// The error was reported above; only the exit code remains.
			return clierror.NewErrorWithSeverity(err, exit.UnspecifiedError(), severity.NONE)
		}
	}
	return nil
}

const maxRecursionLevels = 10

func (c *cliState) runInclude(filename string, contState cliStateEnum) (resState cliStateEnum) {
	if c.levels >= maxRecursionLevels {
		fmt.Fprintf(c.iCtx.stderr, ".read: too many recursion levels (max %d)\n", maxRecursionLevels)
		return contState
	}

	f, err := c.iCtx.fs.Open(filename)
	if err != nil {
		fmt.Fprintf(c.iCtx.stderr, "can't open \"%s\"\n", filename)
		return contState
	}
	// Close the file at the end.
	defer func() { _ = f.Close() }()

	// Including a file: increase the recursion level.
	return c.runIncludeInternal(contState, filename, bufio.NewReader(f), c.levels+1)
}

func (c *cliState) runIncludeInternal(
	contState cliStateEnum, filename string, input *bufio.Reader, level int,
) (resState cliStateEnum) {
	newState := cliState{
		cliCtx:     c.cliCtx,
		sqlConnCtx: c.sqlConnCtx,
		sqlExecCtx: c.sqlExecCtx,
		sqlCtx:     c.sqlCtx,
		iCtx:       c.iCtx,
		ins:        &bufioReader{buf: input},
		conn:       c.conn,
		levels:     level,
	}

	ctx := logtags.AddTag(context.Background(), "read", filename)
	log.Infof(ctx, "reading input at level %d", level)

	if err := newState.doRunShell(cliStartLine, nil, nil, nil); err != nil {
		// Note: a message was already printed on stderr at the point at
		// which the error originated. No need to repeat it here.
		c.exitErr = errors.Wrapf(err, "%v", filename)
	}
	return c.doDecideAfterCmd(contState)
}

func (c *cliState) maybeHandleInterrupt() func() {
	intCh := make(chan os.Signal, 1)
	signal.Notify(intCh, os.Interrupt)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		for {
			select {
			case <-intCh:
				c.iCtx.interrupted.Store(true)
				c.iCtx.mu.Lock()
				cancelFn := c.iCtx.mu.cancelFn
				c.iCtx.mu.Unlock()
				if cancelFn != nil {
					log.Info(ctx, "interrupting the current statement")
					cancelFn()
				}

			case <-ctx.Done():
				// Shell is terminating.
				return
			}
		}
	}()
	return func() {
		signal.Stop(intCh)
		cancel()
	}
}

func (c *cliState) runWithInterruptableCtx(fn func(ctx context.Context) error) error {
	// The cancellation function can be used by the Ctrl+C handler
	// to cancel this query.
	ctx, cancel := context.WithCancel(context.Background())

	// Inform the Ctrl+C handler that this query is executing.
	c.iCtx.mu.Lock()
	c.iCtx.mu.cancelFn = cancel
	c.iCtx.mu.Unlock()
	defer func() {
		c.iCtx.mu.Lock()
		cancel()
		c.iCtx.mu.cancelFn = nil
		c.iCtx.mu.Unlock()
	}()

	// Now run the query.
	return fn(ctx)
}

// setOutput redirects query results to the named file, or back to
// stdout for the name "stdout". If the file cannot be opened, results
// go to stdout.
func (c *cliState) setOutput(file string) {
	if err := c.closeOutputFile(); err != nil {
		fmt.Fprintf(c.iCtx.stderr, "warning: closing output file: %v\n", err)
	}
	if file == "stdout" {
		return
	}
	// NB: permission 0666 mimics fopen(file, "w").
	f, err := c.iCtx.fs.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		fmt.Fprintf(c.iCtx.stderr, "can't write to \"%s\"\n", file)
		return
	}
	c.iCtx.queryOutputFile = f
	c.iCtx.queryOutputName = file
	c.iCtx.queryOutputBuf = bufio.NewWriter(f)
	c.iCtx.queryOutput = c.iCtx.queryOutputBuf
}

func (c *cliState) outputName() string {
	if c.iCtx.queryOutputFile == nil {
		return "stdout"
	}
	return c.iCtx.queryOutputName
}

func (c *cliState) maybeFlushOutput() {
	if err := c.maybeFlushOutputInternal(); err != nil {
		fmt.Fprintf(c.iCtx.stderr, "warning: flushing output file: %v\n", err)
	}
}

func (c *cliState) maybeFlushOutputInternal() error {
	if c.iCtx.queryOutputBuf == nil {
		return nil
	}
	return c.iCtx.queryOutputBuf.Flush()
}

func (c *cliState) closeOutputFile() error {
	if c.iCtx.queryOutputFile == nil {
		return nil
	}
	flushErr := c.maybeFlushOutputInternal()

	// Close file and reset.
	err := c.iCtx.queryOutputFile.Close()
	c.iCtx.queryOutputFile = nil
	c.iCtx.queryOutputName = ""
	c.iCtx.queryOutputBuf = nil
	c.iCtx.queryOutput = c.iCtx.stdout
	return errors.CombineErrors(flushErr, err)
}
