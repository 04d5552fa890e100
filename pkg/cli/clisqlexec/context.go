// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clisqlexec

// MaxColumnWidths is the number of columns whose width can be
// configured. Columns beyond this use a width of 10.
const MaxColumnWidths = 100

// maxSettingLen bounds the length of the null placeholder and of the
// list separator.
const maxSettingLen = 19

// explainWidths is the fixed layout used while explain mode is on.
var explainWidths = [...]int{4, 12, 10, 10, 35}

// Context represents the display settings of a shell session.
type Context struct {
	// Format is the current display format.
	Format Format

	// ShowHeader indicates whether column names are printed before
	// the first row.
	ShowHeader bool

	// ColumnWidths holds the configured column widths for the column
	// format. 0 means the width is derived from the first row.
	ColumnWidths [MaxColumnWidths]int

	nullValue string
	separator string

	// savedDisplay is the display state in effect before explain
	// mode was turned on. It is zero unless explain is active.
	savedDisplay displaySnapshot
}

// displaySnapshot holds the settings overridden by explain mode.
type displaySnapshot struct {
	valid        bool
	format       Format
	showHeader   bool
	columnWidths [MaxColumnWidths]int
}

// NewContext returns a Context with the default display settings: list
// format, no header, "|" separator and an empty null placeholder.
func NewContext() *Context {
	return &Context{
		Format:    ListFormat{},
		separator: "|",
	}
}

// NullValue returns the text displayed in place of NULL.
func (c *Context) NullValue() string { return c.nullValue }

// SetNullValue sets the text displayed in place of NULL. It is
// truncated to 19 bytes.
func (c *Context) SetNullValue(s string) { c.nullValue = truncate(s, maxSettingLen) }

// Separator returns the separator used by the list formats.
func (c *Context) Separator() string { return c.separator }

// SetSeparator sets the separator used by the list formats. It is
// truncated to 19 bytes.
func (c *Context) SetSeparator(s string) { c.separator = truncate(s, maxSettingLen) }

// SetColumnWidth configures the width of column i. Out of range
// indexes are ignored.
func (c *Context) SetColumnWidth(i, w int) {
	if i >= 0 && i < MaxColumnWidths {
		c.ColumnWidths[i] = w
	}
}

// ExplainActive returns true while explain mode is on.
func (c *Context) ExplainActive() bool { return c.savedDisplay.valid }

// SetExplain turns explain mode on or off.
//
// Turning it on saves the current format, header and widths, unless a
// snapshot is already saved, then switches to a fixed column layout.
// Turning it off restores the snapshot and discards it.
func (c *Context) SetExplain(on bool) {
	if on {
		if !c.savedDisplay.valid {
			c.savedDisplay = displaySnapshot{
				valid:        true,
				format:       c.Format,
				showHeader:   c.ShowHeader,
				columnWidths: c.ColumnWidths,
			}
		}
		c.Format = ColumnFormat{}
		c.ShowHeader = true
		c.ColumnWidths = [MaxColumnWidths]int{}
		copy(c.ColumnWidths[:], explainWidths[:])
		return
	}
	if c.savedDisplay.valid {
		c.Format = c.savedDisplay.format
		c.ShowHeader = c.savedDisplay.showHeader
		c.ColumnWidths = c.savedDisplay.columnWidths
		c.savedDisplay = displaySnapshot{}
	}
}

// WithFormat returns a copy of the context that uses format f and
// shows no header. The copy is used for transient renderers, such as
// the ones producing dump or catalog listings.
func (c *Context) WithFormat(f Format) *Context {
	n := *c
	n.Format = f
	n.ShowHeader = false
	n.savedDisplay = displaySnapshot{}
	return &n
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
