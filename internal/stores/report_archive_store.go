package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"flocking-report/internal/models"
	"flocking-report/internal/shared/filestorages"
	"flocking-report/internal/shared/ulid"
)

var (
	ErrRunAlreadyArchived = errors.New("report run already archived")
	ErrArchiveNotFound    = errors.New("archived report not found")
)

const archiveKeyLayout = "20060102T150405Z"

// ArchivedRun identifies one archived report run.
type ArchivedRun struct {
	RunID       string `json:"run_id"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	JSONKey     string `json:"json_key"`
	HTMLKey     string `json:"html_key,omitempty"`
	// ArchivedAt is decoded from the run id; nil when the id is not a ULID.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// ReportArchiveStore keeps every sent report as JSON plus its rendered HTML,
// keyed by window and run id. A run id is written once; a second Save for the
// same run fails with ErrRunAlreadyArchived.
//
//go:generate mockgen -source=report_archive_store.go -destination=./mocks/report_archive_store_mock.go -package=mocks
type ReportArchiveStore interface {
	Save(ctx context.Context, runID string, window models.TimeWindow, report *models.Report, html string) error
	Get(ctx context.Context, runID string, window models.TimeWindow) (*models.Report, error)
	List(ctx context.Context) ([]ArchivedRun, error)
}

type reportArchiveStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportArchiveStore(fileStorage filestorages.FileStorage) ReportArchiveStore {
	return &reportArchiveStore{fileStorage: fileStorage, dir: "flocking"}
}

func (s *reportArchiveStore) Save(ctx context.Context, runID string, window models.TimeWindow, report *models.Report, html string) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	key := s.getKey(runID, window, ".json")
	err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRunAlreadyArchived
		}
		return fmt.Errorf("failed to put report: %w", err)
	}

	if html == "" {
		return nil
	}
	key = s.getKey(runID, window, ".html")
	if err := s.fileStorage.Put(ctx, key, strings.NewReader(html), filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return fmt.Errorf("failed to put report html: %w", err)
	}
	return nil
}

func (s *reportArchiveStore) Get(ctx context.Context, runID string, window models.TimeWindow) (*models.Report, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID, window, ".json"))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

func (s *reportArchiveStore) List(ctx context.Context) ([]ArchivedRun, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	htmlKeys := make(map[string]bool)
	for _, key := range keys {
		if strings.HasSuffix(key, ".html") {
			htmlKeys[key] = true
		}
	}

	runs := []ArchivedRun{}
	for _, key := range keys {
		if !strings.HasSuffix(key, ".json") {
			continue
		}
		// flocking/<start>_<end>/<run_id>.json
		windowDir := path.Base(path.Dir(key))
		start, end, ok := strings.Cut(windowDir, "_")
		if !ok {
			continue
		}
		run := ArchivedRun{
			RunID:       strings.TrimSuffix(path.Base(key), ".json"),
			WindowStart: start,
			WindowEnd:   end,
			JSONKey:     key,
		}
		if htmlKey := strings.TrimSuffix(key, ".json") + ".html"; htmlKeys[htmlKey] {
			run.HTMLKey = htmlKey
		}
		if createdAt, ok := ulid.CreatedAt(run.RunID); ok {
			run.ArchivedAt = &createdAt
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *reportArchiveStore) getKey(runID string, window models.TimeWindow, ext string) string {
	return fmt.Sprintf("%s/%s_%s/%s%s", s.dir,
		window.Start.UTC().Format(archiveKeyLayout),
		window.End.UTC().Format(archiveKeyLayout),
		runID, ext)
}
