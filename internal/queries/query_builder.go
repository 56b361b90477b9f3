package queries

import (
	"strings"

	"flocking-report/internal/models"
)

// flockingLevels is the fixed grouping order Site → VO → Probe → Project.
// Flattening and column assignment depend on this order.
var flockingLevels = []models.GroupLevel{
	{Name: models.AggSite, Field: models.FieldSiteName, Size: models.MaxBucketSize},
	{Name: models.AggVOName, Field: models.FieldReportableVOName, Size: models.MaxBucketSize},
	{Name: models.AggProbeName, Field: models.FieldProbeName, Size: models.MaxBucketSize},
	{Name: models.AggProjectName, Field: models.FieldProjectName, Size: models.MaxBucketSize, Missing: models.MissingProjectName},
}

type QueryBuilder interface {
	// Build returns the flocking usage aggregation request. It has no side effects.
	Build(window models.TimeWindow, probes models.ProbeFilter, indexPattern string) (*models.AggregationRequest, error)
}

type queryBuilder struct{}

func NewQueryBuilder() QueryBuilder {
	return &queryBuilder{}
}

func (b *queryBuilder) Build(window models.TimeWindow, probes models.ProbeFilter, indexPattern string) (*models.AggregationRequest, error) {
	if window.IsZero() {
		return nil, ErrInvalidWindow(models.ErrInvalidWindow)
	}
	if strings.TrimSpace(indexPattern) == "" {
		return nil, errInvalidIndexPattern()
	}

	levels := make([]models.GroupLevel, len(flockingLevels))
	copy(levels, flockingLevels)

	return &models.AggregationRequest{
		IndexPattern: indexPattern,
		Window:       window,
		Probes:       models.ProbeFilter(probes.Values()),
		ResourceType: models.PayloadResourceType,
		// Size 0 returns only aggregations.
		Size:   0,
		Levels: levels,
		Metric: models.SumMetric{Name: models.AggCoreHoursSum, Field: models.FieldCoreHours},
	}, nil
}
