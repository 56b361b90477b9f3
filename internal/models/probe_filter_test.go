package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected ProbeFilter
	}{
		{
			name:     "single probe",
			input:    "condor:flock.opensciencegrid.org",
			expected: ProbeFilter{"condor:flock.opensciencegrid.org"},
		},
		{
			name:     "several probes",
			input:    "condor:a.org,condor:b.org",
			expected: ProbeFilter{"condor:a.org", "condor:b.org"},
		},
		{
			name:     "whitespace is trimmed",
			input:    " condor:a.org , condor:b.org ",
			expected: ProbeFilter{"condor:a.org", "condor:b.org"},
		},
		{
			name:     "blank entries are dropped",
			input:    "condor:a.org,, ,condor:b.org,",
			expected: ProbeFilter{"condor:a.org", "condor:b.org"},
		},
		{
			name:     "empty string yields empty filter",
			input:    "",
			expected: ProbeFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseProbeList(tt.input))
		})
	}
}

func TestProbeFilter_Values_NilSerializesAsEmptyArray(t *testing.T) {
	t.Parallel()

	var probes ProbeFilter
	data, err := json.Marshal(probes.Values())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestProbeFilter_Values_ReturnsCopy(t *testing.T) {
	t.Parallel()

	probes := ProbeFilter{"a"}
	values := probes.Values()
	values[0] = "b"
	assert.Equal(t, "a", probes[0])
}
