// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package severity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeveritySet(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr string
	}{
		{in: "info", want: INFO},
		{in: "WARNING", want: WARNING},
		{in: "Error", want: ERROR},
		{in: "true", want: INFO},
		{in: "false", want: NONE},
		{in: "4", want: FATAL},
		{in: "unknown", wantErr: `unknown severity: "unknown"`},
		{in: "9", wantErr: "severity out of range: 9"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var s Severity
			err := s.Set(tt.in)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, s)
			require.Equal(t, tt.want.String(), s.String())
		})
	}
}
