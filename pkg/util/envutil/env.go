// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package envutil

import (
	"os"
	"os/user"
	"strings"

	"github.com/cockroachdb/errors"
)

// EnvString retrieves the environment variable with the given name.
// It returns the value and whether the variable was set at all.
func EnvString(name string) (string, bool) {
	return os.LookupEnv(name)
}

// EnvOrDefaultString returns the value set by the specified
// environment variable, if any, otherwise the specified default
// value.
func EnvOrDefaultString(name string, value string) string {
	if v, ok := EnvString(name); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return value
}

// HomeDir returns the user's home directory, as determined by the env
// var HOME, if it exists, and otherwise the system's idea of the user
// configuration (e.g. on non-UNIX systems).
func HomeDir() (string, error) {
	if homeDir := os.Getenv("HOME"); len(homeDir) > 0 {
		return homeDir, nil
	}
	userAcct, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine the home directory")
	}
	return userAcct.HomeDir, nil
}
