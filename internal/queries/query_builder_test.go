package queries_test

import (
	"encoding/json"
	"testing"
	"time"

	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() models.TimeWindow {
	return models.TimeWindow{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestQueryBuilder_Build_Structure(t *testing.T) {
	t.Parallel()

	builder := queries.NewQueryBuilder()
	req, err := builder.Build(testWindow(), models.ProbeFilter{"condor:a.org", "condor:b.org"}, "gracc.osg.raw-*")
	require.NoError(t, err)

	assert.Equal(t, "gracc.osg.raw-*", req.IndexPattern)
	assert.Equal(t, 0, req.Size)
	assert.Equal(t, "Payload", req.ResourceType)
	assert.Equal(t, models.ProbeFilter{"condor:a.org", "condor:b.org"}, req.Probes)

	require.Len(t, req.Levels, 4)
	expectedFields := []string{"SiteName", "ReportableVOName", "ProbeName", "ProjectName"}
	for i, level := range req.Levels {
		assert.Equal(t, expectedFields[i], level.Field, "level %d", i)
		assert.Equal(t, models.MaxBucketSize, level.Size, "level %d", i)
	}
	assert.Equal(t, "", req.Levels[0].Missing)
	assert.Equal(t, "N/A", req.Levels[3].Missing)
	assert.Equal(t, models.SumMetric{Name: "CoreHours_sum", Field: "CoreHours"}, req.Metric)
}

func TestQueryBuilder_Build_Body(t *testing.T) {
	t.Parallel()

	req, err := queries.NewQueryBuilder().Build(testWindow(), models.ProbeFilter{"p1"}, "gracc.osg.raw-*")
	require.NoError(t, err)

	data, err := json.Marshal(req.Body())
	require.NoError(t, err)

	expected := `{
	  "size": 0,
	  "query": {"bool": {"filter": [
	    {"range": {"EndTime": {"gte": "2025-03-01T00:00:00Z", "lt": "2025-04-01T00:00:00Z"}}},
	    {"terms": {"ProbeName": ["p1"]}},
	    {"term": {"ResourceType": "Payload"}}
	  ]}},
	  "aggs": {"group_Site": {
	    "terms": {"field": "SiteName", "size": 2147483647},
	    "aggs": {"group_VOName": {
	      "terms": {"field": "ReportableVOName", "size": 2147483647},
	      "aggs": {"group_ProbeName": {
	        "terms": {"field": "ProbeName", "size": 2147483647},
	        "aggs": {"group_ProjectName": {
	          "terms": {"field": "ProjectName", "size": 2147483647, "missing": "N/A"},
	          "aggs": {"CoreHours_sum": {"sum": {"field": "CoreHours"}}}
	        }}
	      }}
	    }}
	  }}
	}`
	assert.JSONEq(t, expected, string(data))
}

func TestQueryBuilder_Build_EmptyProbes(t *testing.T) {
	t.Parallel()

	req, err := queries.NewQueryBuilder().Build(testWindow(), nil, "gracc.osg.raw-*")
	require.NoError(t, err)
	assert.NotNil(t, req.Probes)
	assert.Empty(t, req.Probes)
}

func TestQueryBuilder_Build_DoesNotAliasInputs(t *testing.T) {
	t.Parallel()

	probes := models.ProbeFilter{"p1"}
	req, err := queries.NewQueryBuilder().Build(testWindow(), probes, "idx")
	require.NoError(t, err)

	probes[0] = "changed"
	req.Levels[0].Field = "changed"

	assert.Equal(t, "p1", req.Probes[0])
	again, err := queries.NewQueryBuilder().Build(testWindow(), models.ProbeFilter{"p1"}, "idx")
	require.NoError(t, err)
	assert.Equal(t, "SiteName", again.Levels[0].Field)
}

func TestQueryBuilder_Build_ErrInvalidWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		window models.TimeWindow
	}{
		{name: "missing start", window: models.TimeWindow{End: time.Now()}},
		{name: "missing end", window: models.TimeWindow{Start: time.Now()}},
		{name: "missing both", window: models.TimeWindow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req, err := queries.NewQueryBuilder().Build(tt.window, models.ProbeFilter{"p1"}, "idx")
			require.Error(t, err)
			assert.Nil(t, req)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "REP_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.ErrorIs(t, err, models.ErrInvalidWindow)
		})
	}
}

func TestQueryBuilder_Build_ErrMissingIndexPattern(t *testing.T) {
	t.Parallel()

	_, err := queries.NewQueryBuilder().Build(testWindow(), models.ProbeFilter{"p1"}, "  ")
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "REP_1001", svcErr.Code)
}
