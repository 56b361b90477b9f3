package models

import "math"

// MaxBucketSize is the terms aggregation size used at every grouping level.
// Terms aggregations have no "return every bucket" option, so the cap is the
// largest value the store accepts; real site/VO/probe/project cardinalities
// are several orders of magnitude below it.
const MaxBucketSize = math.MaxInt32

// MissingProjectName labels documents that carry no ProjectName.
const MissingProjectName = "N/A"

// PayloadResourceType is the only ResourceType counted by the flocking report.
const PayloadResourceType = "Payload"

// Store field names.
const (
	FieldEndTime          = "EndTime"
	FieldProbeName        = "ProbeName"
	FieldResourceType     = "ResourceType"
	FieldSiteName         = "SiteName"
	FieldReportableVOName = "ReportableVOName"
	FieldProjectName      = "ProjectName"
	FieldCoreHours        = "CoreHours"
)

// Aggregation names. The decoder walks the reply using the same names.
const (
	AggSite         = "group_Site"
	AggVOName       = "group_VOName"
	AggProbeName    = "group_ProbeName"
	AggProjectName  = "group_ProjectName"
	AggCoreHoursSum = "CoreHours_sum"
)

// GroupLevel is one terms grouping of the aggregation hierarchy.
type GroupLevel struct {
	Name    string
	Field   string
	Size    int
	Missing string
}

// SumMetric is the leaf reduction computed for every innermost bucket.
type SumMetric struct {
	Name  string
	Field string
}

// AggregationRequest is an immutable description of the flocking usage query.
// Levels are ordered outermost first; the order is part of the report's meaning.
type AggregationRequest struct {
	IndexPattern string
	Window       TimeWindow
	Probes       ProbeFilter
	ResourceType string
	Size         int
	Levels       []GroupLevel
	Metric       SumMetric
}

// Body renders the request as an Elasticsearch search body.
func (r *AggregationRequest) Body() map[string]any {
	return map[string]any{
		"size": r.Size,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{
						"range": map[string]any{
							FieldEndTime: map[string]any{
								"gte": r.Window.StartISO(),
								"lt":  r.Window.EndISO(),
							},
						},
					},
					map[string]any{
						"terms": map[string]any{
							FieldProbeName: r.Probes.Values(),
						},
					},
					map[string]any{
						"term": map[string]any{
							FieldResourceType: r.ResourceType,
						},
					},
				},
			},
		},
		"aggs": r.aggs(0),
	}
}

// aggs nests level i and everything below it, ending with the sum metric.
func (r *AggregationRequest) aggs(i int) map[string]any {
	if i == len(r.Levels) {
		return map[string]any{
			r.Metric.Name: map[string]any{
				"sum": map[string]any{"field": r.Metric.Field},
			},
		}
	}

	level := r.Levels[i]
	terms := map[string]any{
		"field": level.Field,
		"size":  level.Size,
	}
	if level.Missing != "" {
		terms["missing"] = level.Missing
	}
	return map[string]any{
		level.Name: map[string]any{
			"terms": terms,
			"aggs":  r.aggs(i + 1),
		},
	}
}
