package events

import (
	"time"

	"flocking-report/internal/models"
)

// SendRequestedEvent asks a background worker to generate and mail one flocking report.
// It is produced by POST /reports/flocking/send and consumed by the send worker.
//
// Example JSON:
//
//	{
//	  "requestId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "windowStart": "2025-01-01T00:00:00Z",
//	  "windowEnd": "2025-02-01T00:00:00Z",
//	  "probes": ["condor:login01.osgconnect.net"],
//	  "test": true,
//	  "dryRun": false
//	}
//
// A nil Probes (JSON null) uses the configured allow-list; an empty one matches nothing.
type SendRequestedEvent struct {
	RequestID   string             `json:"requestId"`
	WindowStart time.Time          `json:"windowStart"`
	WindowEnd   time.Time          `json:"windowEnd"`
	Probes      models.ProbeFilter `json:"probes"`
	Test        bool               `json:"test"`
	DryRun      bool               `json:"dryRun"`
}

// Window returns the requested report range.
func (e SendRequestedEvent) Window() models.TimeWindow {
	return models.TimeWindow{Start: e.WindowStart, End: e.WindowEnd}
}

// PartitionKey routes every request for the same window to the same worker.
func (e SendRequestedEvent) PartitionKey() string {
	return e.Window().String()
}
