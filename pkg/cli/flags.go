// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/sqlsh/pkg/cli/cliflags"
	"github.com/cockroachdb/sqlsh/pkg/cli/clisqlexec"
	"github.com/cockroachdb/sqlsh/pkg/util/envutil"
	"github.com/cockroachdb/sqlsh/pkg/util/log"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
// This allows an arbitrary number of pre-run functions with ordering based
// on the order in which AddPersistentPreRunE is called (usually package init order).
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := envutil.EnvString(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(err)
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// switchFlag is a boolean flag that, when set to true, stores a fixed
// value into a shared destination. Several switch flags sharing one
// destination resolve to the last one given on the command line.
type switchFlag[T any] struct {
	dst *T
	val T
	set bool
}

var _ pflag.Value = (*switchFlag[bool])(nil)

// String implements the pflag.Value interface.
func (s *switchFlag[T]) String() string { return strconv.FormatBool(s.set) }

// Type implements the pflag.Value interface.
func (s *switchFlag[T]) Type() string { return "bool" }

// IsBoolFlag lets pflag accept the flag without a value.
func (s *switchFlag[T]) IsBoolFlag() bool { return true }

// Set implements the pflag.Value interface.
func (s *switchFlag[T]) Set(v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrapf(err, "invalid boolean value %q", v)
	}
	s.set = b
	if b {
		*s.dst = s.val
	}
	return nil
}

// switchVarFlag registers a switchFlag. The flag can be given without
// a value.
func switchVarFlag[T any](f *pflag.FlagSet, dst *T, val T, flagInfo cliflags.FlagInfo) {
	VarFlag(f, &switchFlag[T]{dst: dst, val: val}, flagInfo)
	f.Lookup(flagInfo.Name).NoOptDefVal = "true"
}

func init() {
	initCLIDefaults()

	// Every command inherits the logging configuration.
	AddPersistentPreRunE(sqlshCmd, func(*cobra.Command, []string) error {
		applyLogFlags()
		return nil
	})

	{
		pf := sqlshCmd.PersistentFlags()

		VarFlag(pf, &logCtx.stderrThreshold, cliflags.LogToStderr)
		// When the flag is given without a value, log everything.
		pf.Lookup(cliflags.LogToStderr.Name).NoOptDefVal = severity.INFO.String()
		IntFlag(pf, &logCtx.verbosity, cliflags.Verbosity, logCtx.verbosity)
		BoolFlag(pf, &logCtx.redactable, cliflags.RedactableLogs, logCtx.redactable)
		BoolFlag(pf, &logCtx.noColor, cliflags.NoColor, logCtx.noColor)
	}

	{
		f := sqlshCmd.Flags()

		StringFlag(f, &sqlCtx.InitFile, cliflags.InitFile, sqlCtx.InitFile)
		BoolFlag(f, &sqlCtx.Echo, cliflags.Echo, sqlCtx.Echo)

		switchVarFlag[clisqlexec.Format](f, &displayCtx.format, clisqlexec.HTMLFormat{}, cliflags.HTMLMode)
		switchVarFlag[clisqlexec.Format](f, &displayCtx.format, clisqlexec.ListFormat{}, cliflags.ListMode)
		switchVarFlag[clisqlexec.Format](f, &displayCtx.format, clisqlexec.LineFormat{}, cliflags.LineMode)
		switchVarFlag[clisqlexec.Format](f, &displayCtx.format, clisqlexec.ColumnFormat{}, cliflags.ColumnMode)

		switchVarFlag(f, &displayCtx.showHeader, true, cliflags.Header)
		switchVarFlag(f, &displayCtx.showHeader, false, cliflags.NoHeader)

		StringFlag(f, &displayCtx.separator, cliflags.Separator, displayCtx.separator)
		StringFlag(f, &displayCtx.nullValue, cliflags.NullValue, displayCtx.nullValue)
	}
}

// applyLogFlags configures the log package from the logging flags.
func applyLogFlags() {
	log.SetStderrThreshold(logCtx.stderrThreshold)
	log.SetVerbosity(int32(logCtx.verbosity))
	log.SetRedactable(logCtx.redactable)
	log.SetNoColor(logCtx.noColor)
}

// applyDisplayFlags copies the display flags into the display
// settings used by the shell.
func applyDisplayFlags() {
	sqlExecCtx.Format = displayCtx.format
	sqlExecCtx.ShowHeader = displayCtx.showHeader
	sqlExecCtx.SetSeparator(displayCtx.separator)
	sqlExecCtx.SetNullValue(displayCtx.nullValue)
}
