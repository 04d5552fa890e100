// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/sqlsh/pkg/cli/exit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	out, errOut string
	code        exit.Code
}

// runCLI runs the command line with args, feeding input on stdin.
func runCLI(t *testing.T, input string, args ...string) cliResult {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	inPath := filepath.Join(dir, "stdin")
	require.NoError(t, os.WriteFile(inPath, []byte(input), 0644))
	in, err := os.Open(inPath)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()
	out, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer func() { _ = out.Close() }()
	errOut, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer func() { _ = errOut.Close() }()

	prevIn, prevOut, prevErr := stdin, stdout, stderr
	stdin, stdout, stderr = in, out, errOut
	defer func() { stdin, stdout, stderr = prevIn, prevOut, prevErr }()

	initCLIDefaults()
	code := doMain(args)

	readBack := func(f *os.File) string {
		b, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(b)
	}
	return cliResult{out: readBack(out), errOut: readBack(errOut), code: code}
}

func TestRunInput(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	res := runCLI(t, "CREATE TABLE t(a, b);\nINSERT INTO t VALUES (1, 'x');\nSELECT * FROM t;\n", db)
	assert.Equal(t, exit.Success(), res.code)
	assert.Equal(t, "1|x\n", res.out)
	assert.Equal(t, "", res.errOut)

	// The database persists across invocations.
	res = runCLI(t, "", db, "SELECT count(*) FROM t")
	assert.Equal(t, exit.Success(), res.code)
	assert.Equal(t, "1\n", res.out)

	res = runCLI(t, "SELECT 3;\n", "--echo", db)
	assert.Equal(t, "SELECT 3;\n3\n", res.out)
}

func TestDisplayFlags(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")

	testData := []struct {
		args     []string
		expected string
	}{
		{nil, "1|\n"},
		{[]string{"--line", "--html"}, "<TR><TD>1</TD>\n<TD></TD>\n</TR>\n"},
		{[]string{"--html", "--line"}, "    x = 1\n    y = \n"},
		{[]string{"--column", "--list"}, "1|\n"},
		{[]string{"--header"}, "x|y\n1|\n"},
		{[]string{"--header", "--noheader"}, "1|\n"},
		{[]string{"--noheader", "--header"}, "x|y\n1|\n"},
		{[]string{"--separator", ":", "--nullvalue=nil"}, "1:nil\n"},
		{[]string{"--separator=" + strings.Repeat("-", 30)}, "1" + strings.Repeat("-", 19) + "\n"},
	}
	for _, tc := range testData {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			args := append(append([]string{}, tc.args...), db, "SELECT 1 AS x, NULL AS y")
			res := runCLI(t, "", args...)
			assert.Equal(t, exit.Success(), res.code, "stderr: %s", res.errOut)
			assert.Equal(t, tc.expected, res.out)
		})
	}
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")
	initPath := filepath.Join(dir, "init.sql")
	require.NoError(t, os.WriteFile(initPath, []byte(".mode line\n"), 0644))

	res := runCLI(t, "", "--init", initPath, db, "SELECT 1 AS x")
	assert.Equal(t, exit.Success(), res.code)
	assert.Equal(t, "    x = 1\n", res.out)

	missing := filepath.Join(dir, "missing.sql")
	res = runCLI(t, "SELECT 1;\n", "--init", missing, db)
	assert.Equal(t, exit.Success(), res.code)
	assert.Equal(t, "1\n", res.out)
	assert.Equal(t, "can't open \""+missing+"\"\n", res.errOut)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")

	t.Run("statement error", func(t *testing.T) {
		res := runCLI(t, "", db, "SELECT * FROM missing")
		assert.Equal(t, exit.UnspecifiedError(), res.code)
		assert.True(t, strings.HasPrefix(res.errOut, "SQL error: "), "stderr: %s", res.errOut)
		// Already reported: not repeated as a generic error.
		assert.NotContains(t, res.errOut, "Error: ")
	})

	t.Run("errors in the input do not affect the exit code", func(t *testing.T) {
		res := runCLI(t, "SELECT * FROM missing;\n.bogus\nSELECT 1;\n", db)
		assert.Equal(t, exit.Success(), res.code)
		assert.Equal(t, "1\n", res.out)
	})

	t.Run("missing argument", func(t *testing.T) {
		res := runCLI(t, "")
		assert.Equal(t, exit.UnspecifiedError(), res.code)
		assert.Contains(t, res.errOut, "Error: accepts between 1 and 2 arg(s), received 0\n")
		assert.Contains(t, res.errOut, "HINT: "+usageHint+"\n")
	})

	t.Run("unknown flag", func(t *testing.T) {
		res := runCLI(t, "", "--bail", db)
		assert.Equal(t, exit.UnspecifiedError(), res.code)
		assert.Contains(t, res.errOut, "unknown flag: --bail")
		assert.Contains(t, res.errOut, "HINT: "+usageHint+"\n")
	})

	t.Run("unopenable database", func(t *testing.T) {
		bad := filepath.Join(dir, "no", "such", "dir", "test.db")
		res := runCLI(t, "", bad, "SELECT 1")
		assert.Equal(t, exit.UnspecifiedError(), res.code)
		assert.True(t, strings.HasPrefix(res.errOut, "Unable to open database \""+bad+"\": "), "stderr: %s", res.errOut)
		assert.Equal(t, "", res.out)
	})
}

func TestMetaCommandArgument(t *testing.T) {
	db := filepath.Join(t.TempDir(), "test.db")
	res := runCLI(t, "SELECT 1;\n", db, ".show")
	assert.Equal(t, exit.Success(), res.code)
	assert.Contains(t, res.out, "     mode: list\n")
	assert.NotContains(t, res.out, "1\n")
}
