package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"flocking-report/internal/models"
	"flocking-report/internal/shared/filestorages"
	"flocking-report/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testWindow() models.TimeWindow {
	return models.TimeWindow{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testReport() *models.Report {
	return &models.Report{
		Title:   "OSG Flocking: Usage of OSG Sites for 2025-01-01 00:00:00 - 2025-02-01 00:00:00",
		Columns: []string{models.ColumnVOName, models.ColumnWallHours},
		Cells: map[string][]any{
			models.ColumnVOName:    {"VO1", models.TotalLabel},
			models.ColumnWallHours: {10.5, 10.5},
		},
	}
}

func TestReportArchiveStore_Save_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	ctx := context.Background()
	report := testReport()
	expectedJSON, _ := json.Marshal(report)

	gomock.InOrder(
		mockFileStorage.EXPECT().
			Put(ctx, "flocking/20250101T000000Z_20250201T000000Z/run-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
			DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) error {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, expectedJSON, data)
				return nil
			}),
		mockFileStorage.EXPECT().
			Put(ctx, "flocking/20250101T000000Z_20250201T000000Z/run-1.html", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
			DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) error {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, "<html></html>", string(data))
				return nil
			}),
	)

	err := store.Save(ctx, "run-1", testWindow(), report, "<html></html>")
	assert.NoError(t, err)
}

func TestReportArchiveStore_Save_WithoutHTML(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	err := store.Save(context.Background(), "run-1", testWindow(), testReport(), "")
	assert.NoError(t, err)
}

func TestReportArchiveStore_Save_AlreadyArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(filestorages.ErrFileAlreadyExists)

	err := store.Save(context.Background(), "run-1", testWindow(), testReport(), "<html></html>")
	assert.ErrorIs(t, err, ErrRunAlreadyArchived)
}

func TestReportArchiveStore_Save_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	putErr := errors.New("disk full")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(putErr)

	err := store.Save(context.Background(), "run-1", testWindow(), testReport(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, putErr)
	assert.Contains(t, err.Error(), "failed to put report")
}

func TestReportArchiveStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "flocking/20250101T000000Z_20250201T000000Z/run-1.json").
		Return(nil, filestorages.ErrFileNotFound)

	_, err := store.Get(context.Background(), "run-1", testWindow())
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestReportArchiveStore_Get_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(io.NopCloser(strings.NewReader("{not json")), nil)

	_, err := store.Get(context.Background(), "run-1", testWindow())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal report")
}

func TestReportArchiveStore_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		List(gomock.Any(), "flocking").
		Return([]string{
			"flocking/20250101T000000Z_20250201T000000Z/run-1.html",
			"flocking/20250101T000000Z_20250201T000000Z/run-1.json",
			"flocking/20250201T000000Z_20250301T000000Z/run-2.json",
			"flocking/stray.json",
		}, nil)

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ArchivedRun{
		{
			RunID:       "run-1",
			WindowStart: "20250101T000000Z",
			WindowEnd:   "20250201T000000Z",
			JSONKey:     "flocking/20250101T000000Z_20250201T000000Z/run-1.json",
			HTMLKey:     "flocking/20250101T000000Z_20250201T000000Z/run-1.html",
		},
		{
			RunID:       "run-2",
			WindowStart: "20250201T000000Z",
			WindowEnd:   "20250301T000000Z",
			JSONKey:     "flocking/20250201T000000Z_20250301T000000Z/run-2.json",
		},
	}, runs)
}

func TestReportArchiveStore_RoundTrip(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewReportArchiveStore(fileStorage)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", testWindow(), testReport(), "<html></html>"))
	assert.ErrorIs(t, store.Save(ctx, "run-1", testWindow(), testReport(), ""), ErrRunAlreadyArchived)

	got, err := store.Get(ctx, "run-1", testWindow())
	require.NoError(t, err)
	assert.Equal(t, testReport(), got)

	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.NotEmpty(t, runs[0].HTMLKey)
}

func TestReportArchiveStore_List_ArchivedAtFromRunID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportArchiveStore(mockFileStorage)

	mockFileStorage.EXPECT().
		List(gomock.Any(), "flocking").
		Return([]string{"flocking/20250101T000000Z_20250201T000000Z/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"}, nil)

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.NotNil(t, runs[0].ArchivedAt)
	assert.Equal(t, int64(1469918176385), runs[0].ArchivedAt.UnixMilli())
}
