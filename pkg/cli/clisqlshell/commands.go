// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlshell

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlexec"
)

const helpMessage = `.dump ?TABLE? ...      Dump the database in a text format
.echo ON|OFF           Turn command echo on or off
.exit                  Exit this program
.explain ON|OFF        Turn output mode suitable for EXPLAIN on or off.
.header(s) ON|OFF      Turn display of headers on or off
.help                  Show this message
.indices TABLE         Show names of all indices on TABLE
.mode MODE             Set mode to one of "line(s)", "column(s)", 
                       "insert", "list", or "html"
.mode insert TABLE     Generate SQL insert statements for TABLE
.nullvalue STRING      Print STRING instead of nothing for NULL data
.output FILENAME       Send output to FILENAME
.output stdout         Send output to the screen
.prompt MAIN CONTINUE  Replace the standard prompts
.quit                  Exit this program
.read FILENAME         Execute SQL in FILENAME
.reindex ?TABLE?       Rebuild indices
.schema ?TABLE?        Show the CREATE statements
.separator STRING      Change separator string for "list" mode
.show                  Show the current values for various settings
.tables ?PATTERN?      List names of tables matching a pattern
.timeout MS            Try opening locked tables for MS milliseconds
.width NUM NUM ...     Set column widths for "column" mode
`

// maxMetaCmdArgs is the maximum number of tokens on a meta-command
// line, the command name included. Further text is ignored.
const maxMetaCmdArgs = 50

// unlimitedArgs marks a command accepting any number of arguments.
const unlimitedArgs = -1

// metaCommand describes one entry of the meta-command table.
type metaCommand struct {
	name string
	// minPrefix is the minimum number of characters that must be typed
	// to select this command.
	minPrefix int
	// minArgs and maxArgs bound the number of arguments, not counting
	// the command name.
	minArgs, maxArgs int
	run              func(c *cliState, args []string, nextState cliStateEnum) cliStateEnum
}

// metaCommands is the ordered command table. A typed command selects
// the first entry of which it is a prefix and whose arity accepts the
// arguments.
var metaCommands []metaCommand

func init() {
	metaCommands = []metaCommand{
		{name: "dump", minArgs: 0, maxArgs: unlimitedArgs, run: (*cliState).handleDump},
		{name: "echo", minArgs: 1, maxArgs: 1, run: (*cliState).handleEcho},
		{name: "exit", run: (*cliState).handleExit},
		{name: "explain", maxArgs: 1, run: (*cliState).handleExplain},
		{name: "headers", minArgs: 1, maxArgs: 1, run: (*cliState).handleHeaders},
		{name: "help", run: (*cliState).handleHelp},
		{name: "indices", minArgs: 1, maxArgs: 1, run: (*cliState).handleIndices},
		{name: "mode", minArgs: 1, maxArgs: 2, run: (*cliState).handleMode},
		{name: "nullvalue", minArgs: 1, maxArgs: 1, run: (*cliState).handleNullValue},
		{name: "output", minArgs: 1, maxArgs: 1, run: (*cliState).handleOutput},
		{name: "prompt", minArgs: 1, maxArgs: 2, run: (*cliState).handlePrompt},
		{name: "quit", run: (*cliState).handleQuit},
		{name: "read", minArgs: 1, maxArgs: 1, run: (*cliState).handleRead},
		{name: "reindex", maxArgs: 1, run: (*cliState).handleReindex},
		{name: "schema", maxArgs: 1, run: (*cliState).handleSchema},
		{name: "separator", minArgs: 1, maxArgs: 1, run: (*cliState).handleSeparator},
		{name: "show", run: (*cliState).handleShow},
		{name: "tables", minPrefix: 2, maxArgs: 1, run: (*cliState).handleTables},
		{name: "timeout", minPrefix: 2, minArgs: 1, maxArgs: 1, run: (*cliState).handleTimeout},
		{name: "width", minArgs: 1, maxArgs: unlimitedArgs, run: (*cliState).handleWidth},
	}
}

// lookupMetaCommand finds the command selected by the typed name with
// nArgs arguments.
func lookupMetaCommand(name string, nArgs int) *metaCommand {
	if name == "" {
		return nil
	}
	for i := range metaCommands {
		cmd := &metaCommands[i]
		if len(name) < cmd.minPrefix || !strings.HasPrefix(cmd.name, name) {
			continue
		}
		if nArgs < cmd.minArgs || (cmd.maxArgs != unlimitedArgs && nArgs > cmd.maxArgs) {
			continue
		}
		return cmd
	}
	return nil
}

// scanMetaCmdArgs splits the text of a meta-command line, after the
// leading dot, into tokens. Tokens are separated by whitespace. A token
// starting with a single or double quote extends to the matching quote,
// and the quotes are removed. There is no escape processing.
func scanMetaCmdArgs(line string) []string {
	var args []string
	i := 0
	for i < len(line) && len(args) < maxMetaCmdArgs {
		for i < len(line) && strings.IndexByte(spaceChars, line[i]) >= 0 {
			i++
		}
		if i >= len(line) {
			break
		}
		if delim := line[i]; delim == '\'' || delim == '"' {
			i++
			start := i
			for i < len(line) && line[i] != delim {
				i++
			}
			args = append(args, line[start:i])
			if i < len(line) {
				i++
			}
			continue
		}
		start := i
		for i < len(line) && strings.IndexByte(spaceChars, line[i]) < 0 {
			i++
		}
		args = append(args, line[start:i])
	}
	return args
}

func (c *cliState) doHandleCliCmd(loopState cliStateEnum) cliStateEnum {
	line := strings.TrimLeft(c.lastInputLine, spaceChars)
	args := scanMetaCmdArgs(strings.TrimPrefix(line, "."))
	if len(args) == 0 {
		return loopState
	}
	cmd := lookupMetaCommand(args[0], len(args)-1)
	if cmd == nil {
		fmt.Fprintf(c.iCtx.stderr,
			"unknown command or invalid arguments:  \"%s\". Enter \".help\" for help\n", args[0])
		return loopState
	}
	return cmd.run(c, args[1:], loopState)
}

// atoi converts the leading decimal integer of s, after optional
// whitespace and sign, and returns 0 when there is none.
func atoi(s string) int {
	s = strings.TrimLeft(s, spaceChars)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// boolValue interprets a meta-command argument as a boolean: "on" and
// "yes" in any case, or any non-zero integer, are true.
func boolValue(s string) bool {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true
	}
	return atoi(s) != 0
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func (c *cliState) handleEcho(args []string, nextState cliStateEnum) cliStateEnum {
	c.sqlCtx.Echo = boolValue(args[0])
	return nextState
}

func (c *cliState) handleExit(_ []string, _ cliStateEnum) cliStateEnum {
	return cliStop
}

func (c *cliState) handleQuit(_ []string, _ cliStateEnum) cliStateEnum {
	c.iCtx.quitRequested = true
	if err := c.conn.Close(); err != nil {
		fmt.Fprintf(c.iCtx.stderr, "warning: closing database: %v\n", err)
	}
	return cliStop
}

func (c *cliState) handleExplain(args []string, nextState cliStateEnum) cliStateEnum {
	on := true
	if len(args) > 0 {
		on = boolValue(args[0])
	}
	c.sqlExecCtx.SetExplain(on)
	return nextState
}

func (c *cliState) handleHeaders(args []string, nextState cliStateEnum) cliStateEnum {
	c.sqlExecCtx.ShowHeader = boolValue(args[0])
	return nextState
}

func (c *cliState) handleHelp(_ []string, nextState cliStateEnum) cliStateEnum {
	fmt.Fprint(c.iCtx.stderr, helpMessage)
	return nextState
}

func (c *cliState) handleMode(args []string, nextState cliStateEnum) cliStateEnum {
	table := ""
	if len(args) > 1 {
		table = clisqlexec.QuoteIdent(args[1])
	}
	f, err := clisqlexec.ParseFormat(args[0], table)
	if err != nil {
		fmt.Fprintln(c.iCtx.stderr, err)
		return nextState
	}
	c.sqlExecCtx.Format = f
	return nextState
}

func (c *cliState) handleNullValue(args []string, nextState cliStateEnum) cliStateEnum {
	c.sqlExecCtx.SetNullValue(args[0])
	return nextState
}

func (c *cliState) handleSeparator(args []string, nextState cliStateEnum) cliStateEnum {
	c.sqlExecCtx.SetSeparator(args[0])
	return nextState
}

func (c *cliState) handleOutput(args []string, nextState cliStateEnum) cliStateEnum {
	c.setOutput(args[0])
	return nextState
}

func (c *cliState) handlePrompt(args []string, nextState cliStateEnum) cliStateEnum {
	c.iCtx.fullPrompt = truncate(args[0], maxPromptLen)
	if len(args) > 1 {
		c.iCtx.continuePrompt = truncate(args[1], maxPromptLen)
	}
	return nextState
}

func (c *cliState) handleRead(args []string, nextState cliStateEnum) cliStateEnum {
	return c.runInclude(args[0], nextState)
}

func (c *cliState) handleShow(_ []string, nextState cliStateEnum) cliStateEnum {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	w := c.iCtx.queryOutput
	fmt.Fprintf(w, "%9.9s: %s\n", "echo", onOff(c.sqlCtx.Echo))
	fmt.Fprintf(w, "%9.9s: %s\n", "explain", onOff(c.sqlExecCtx.ExplainActive()))
	fmt.Fprintf(w, "%9.9s: %s\n", "headers", onOff(c.sqlExecCtx.ShowHeader))
	fmt.Fprintf(w, "%9.9s: %s\n", "mode", c.sqlExecCtx.Format)
	fmt.Fprintf(w, "%9.9s: %s\n", "nullvalue", c.sqlExecCtx.NullValue())
	fmt.Fprintf(w, "%9.9s: %s\n", "output", c.outputName())
	fmt.Fprintf(w, "%9.9s: %s\n", "separator", c.sqlExecCtx.Separator())
	fmt.Fprintf(w, "%9.9s: ", "width")
	for _, width := range c.sqlExecCtx.ColumnWidths {
		if width == 0 {
			break
		}
		fmt.Fprintf(w, "%d ", width)
	}
	fmt.Fprint(w, "\n\n")
	return nextState
}

func (c *cliState) handleTimeout(args []string, nextState cliStateEnum) cliStateEnum {
	c.conn.SetBusyTimeout(time.Duration(atoi(args[0])) * time.Millisecond)
	return nextState
}

func (c *cliState) handleWidth(args []string, nextState cliStateEnum) cliStateEnum {
	for i, arg := range args {
		c.sqlExecCtx.SetColumnWidth(i, atoi(arg))
	}
	return nextState
}
