package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWindow is returned when a report window bound is missing or cannot be parsed.
var ErrInvalidWindow = errors.New("invalid time window")

// StoreTimeLayout is the ISO-8601 layout the document store expects for EndTime bounds.
const StoreTimeLayout = "2006-01-02T15:04:05Z"

// timeLayouts are tried in order. Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// TimeWindow is the half-open report range [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow returns a window for already parsed bounds.
// Both bounds must be set; Start < End is not checked.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, fmt.Errorf("%w: start is required", ErrInvalidWindow)
	}
	if end.IsZero() {
		return TimeWindow{}, fmt.Errorf("%w: end is required", ErrInvalidWindow)
	}
	return TimeWindow{Start: start.UTC(), End: end.UTC()}, nil
}

// ParseTimeWindow parses both bounds with ParseTime.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	startTime, err := ParseTime(start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("start: %w", err)
	}
	endTime, err := ParseTime(end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("end: %w", err)
	}
	return NewTimeWindow(startTime, endTime)
}

// ParseTime parses a user supplied timestamp in one of the accepted layouts.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: missing timestamp", ErrInvalidWindow)
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable timestamp %q", ErrInvalidWindow, value)
}

// IsZero reports whether either bound is unset.
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() || w.End.IsZero()
}

// StartISO formats Start for the store's range filter.
func (w TimeWindow) StartISO() string {
	return w.Start.UTC().Format(StoreTimeLayout)
}

// EndISO formats End for the store's range filter.
func (w TimeWindow) EndISO() string {
	return w.End.UTC().Format(StoreTimeLayout)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", w.Start.UTC().Format("2006-01-02 15:04:05"), w.End.UTC().Format("2006-01-02 15:04:05"))
}
