// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/sqlsh/pkg/util/log/severity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormatWithContextTags checks that the tags attached to the
// context are rendered in insertion order ahead of the message.
func TestFormatWithContextTags(t *testing.T) {
	ctx := logtags.AddTag(context.Background(), "shell", nil)
	ctx = logtags.AddTag(ctx, "read", "init.sql")
	require.Equal(t, "[shell,read=init.sql] hello world",
		FormatWithContextTags(ctx, "hello %s", "world"))

	require.Equal(t, "no tags", FormatWithContextTags(context.Background(), "no tags"))
}

func TestRedactableMessage(t *testing.T) {
	ctx := context.Background()
	args := []interface{}{"secret"}
	assert.Equal(t, "open ‹secret›", makeMessage(ctx, true, "open %s", args))
	assert.Equal(t, "open secret", makeMessage(ctx, false, "open %s", args))
}

func TestStderrThreshold(t *testing.T) {
	sc := Scope(t)
	defer sc.Close(t)
	ctx := context.Background()

	Infof(ctx, "visible %d", 1)
	SetStderrThreshold(severity.WARNING)
	Infof(ctx, "invisible %d", 2)
	Warningf(ctx, "warned %d", 3)

	out := sc.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "got:\n%s", out)
	assert.True(t, strings.HasPrefix(lines[0], "I"), lines[0])
	assert.Contains(t, lines[0], "log_test.go:")
	assert.Contains(t, lines[0], "visible 1")
	assert.True(t, strings.HasPrefix(lines[1], "W"), lines[1])
	assert.Contains(t, lines[1], "warned 3")
}

func TestFatalExitOverride(t *testing.T) {
	sc := Scope(t)
	defer sc.Close(t)

	exitCode := -1
	SetExitFunc(true /* hideStack */, func(code int) { exitCode = code })
	defer ResetExitFunc()

	Fatalf(context.Background(), "out of memory")
	require.Equal(t, 1, exitCode)
	require.Contains(t, sc.String(), "out of memory")
	require.NotContains(t, sc.String(), "goroutine ")
}

func TestEveryN(t *testing.T) {
	e := Every(time.Minute)
	now := time.Now()
	assert.True(t, e.shouldLog(now))
	assert.False(t, e.shouldLog(now.Add(time.Second)))
	assert.True(t, e.shouldLog(now.Add(2*time.Minute)))
}
