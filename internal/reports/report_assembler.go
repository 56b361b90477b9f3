package reports

import (
	"fmt"
	"iter"
	"slices"

	"flocking-report/internal/models"
)

type ReportAssembler interface {
	// Assemble folds records into columns and appends the grand total row.
	Assemble(title string, records iter.Seq[models.FlatRecord], columns []string) *models.Report
}

type reportAssembler struct{}

func NewReportAssembler() ReportAssembler {
	return &reportAssembler{}
}

func (a *reportAssembler) Assemble(title string, records iter.Seq[models.FlatRecord], columns []string) *models.Report {
	report := &models.Report{
		Title:   title,
		Columns: slices.Clone(columns),
		Cells:   make(map[string][]any, len(columns)),
	}
	for _, column := range report.Columns {
		report.Cells[column] = []any{}
	}

	for record := range records {
		for _, column := range report.Columns {
			report.Cells[column] = append(report.Cells[column], models.CellFor(column, record))
		}
	}

	// Summed before the total row is appended, in row order.
	total := 0.0
	for _, cell := range report.Cells[models.ColumnWallHours] {
		hours, _ := cell.(float64)
		total += hours
	}

	for _, column := range report.Columns {
		var cell any
		switch column {
		case models.ColumnVOName:
			cell = models.TotalLabel
		case models.ColumnWallHours:
			cell = total
		default:
			cell = ""
		}
		report.Cells[column] = append(report.Cells[column], cell)
	}

	return report
}

// Title returns the flocking report title for window.
func Title(window models.TimeWindow) string {
	return fmt.Sprintf("OSG Flocking: Usage of OSG Sites for %s", window)
}

// Sorted returns records ordered by (site, vo, probe, project).
// The store's bucket order is not stable across versions; use this when output must be.
func Sorted(records iter.Seq[models.FlatRecord]) iter.Seq[models.FlatRecord] {
	return func(yield func(models.FlatRecord) bool) {
		all := slices.Collect(records)
		slices.SortStableFunc(all, func(a, b models.FlatRecord) int {
			switch {
			case a.Less(b):
				return -1
			case b.Less(a):
				return 1
			}
			return 0
		})
		for _, record := range all {
			if !yield(record) {
				return
			}
		}
	}
}
