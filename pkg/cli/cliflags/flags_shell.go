// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

// Flags for the shell command.
var (
	InitFile = FlagInfo{
		Name:   "init",
		EnvVar: "SQLSH_INIT",
		Description: `
Read and execute commands from the given file before reading the
main input. By default, ~/.sqliterc is used when it exists.`,
	}

	HTMLMode = FlagInfo{
		Name:        "html",
		Description: `Set the output mode to HTML table rows.`,
	}

	ListMode = FlagInfo{
		Name:        "list",
		Description: `Set the output mode to delimited lists. This is the default.`,
	}

	LineMode = FlagInfo{
		Name:        "line",
		Description: `Set the output mode to one value per line.`,
	}

	ColumnMode = FlagInfo{
		Name:        "column",
		Description: `Set the output mode to left-aligned columns.`,
	}

	Separator = FlagInfo{
		Name:   "separator",
		EnvVar: "SQLSH_SEPARATOR",
		Description: `
Set the field separator used in list mode.`,
	}

	NullValue = FlagInfo{
		Name:   "nullvalue",
		EnvVar: "SQLSH_NULLVALUE",
		Description: `
Set the text displayed in place of NULL values.`,
	}

	Header = FlagInfo{
		Name:        "header",
		Description: `Turn headers on.`,
	}

	NoHeader = FlagInfo{
		Name:        "noheader",
		Description: `Turn headers off. This is the default.`,
	}

	Echo = FlagInfo{
		Name:        "echo",
		EnvVar:      "SQLSH_ECHO",
		Description: `Print each input line before executing it.`,
	}

	LogToStderr = FlagInfo{
		Name: "logtostderr",
		Description: `
Write log messages at or above the given severity to stderr.
Valid values are INFO, WARNING, ERROR, FATAL and NONE. When the flag
is given without a value, all messages are written.`,
	}

	Verbosity = FlagInfo{
		Name:        "verbosity",
		EnvVar:      "SQLSH_VERBOSITY",
		Description: `Log verbosity level for diagnostics.`,
	}

	RedactableLogs = FlagInfo{
		Name: "redactable-logs",
		Description: `
Keep redaction markers around potentially sensitive values in
log messages.`,
	}

	NoColor = FlagInfo{
		Name:        "no-color",
		EnvVar:      "SQLSH_NO_COLOR",
		Description: `Disable colors in log messages written to the terminal.`,
	}
)
