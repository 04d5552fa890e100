// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	assert.Equal(t, "0", Success().String())
	assert.Equal(t, "1", fmt.Sprintf("%v", UnspecifiedError()))
	assert.Equal(t, "2", fmt.Sprintf("%d", UnspecifiedGoPanic()))
}
