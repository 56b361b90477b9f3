package events

import (
	"encoding/json"
	"testing"
	"time"

	"flocking-report/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequestedEvent_ProbesJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		probes       models.ProbeFilter
		expectedJSON string
	}{
		{name: "configured list", probes: nil, expectedJSON: `"probes":null`},
		{name: "empty list matches nothing", probes: models.ProbeFilter{}, expectedJSON: `"probes":[]`},
		{name: "explicit list", probes: models.ProbeFilter{"condor:a"}, expectedJSON: `"probes":["condor:a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(SendRequestedEvent{RequestID: "req-1", Probes: tt.probes})
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.expectedJSON)

			var decoded SendRequestedEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.probes == nil, decoded.Probes == nil)
			assert.Equal(t, len(tt.probes), len(decoded.Probes))
		})
	}
}

func TestSendRequestedEvent_PartitionKey(t *testing.T) {
	t.Parallel()

	event := SendRequestedEvent{
		WindowStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "2025-01-01 00:00:00 - 2025-02-01 00:00:00", event.PartitionKey())
	assert.Equal(t, event.Window().String(), event.PartitionKey())
}
