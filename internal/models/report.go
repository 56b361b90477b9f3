package models

// Report column names.
const (
	ColumnVOName      = "VOName"
	ColumnSiteName    = "SiteName"
	ColumnProbeName   = "ProbeName"
	ColumnProjectName = "ProjectName"
	ColumnWallHours   = "Wall Hours"
)

// TotalLabel is written to the VOName cell of the synthesized last row.
const TotalLabel = "Total"

// DefaultColumns is the flocking report's column order.
var DefaultColumns = []string{
	ColumnVOName,
	ColumnSiteName,
	ColumnProbeName,
	ColumnProjectName,
	ColumnWallHours,
}

// columnFields maps a column to the FlatRecord field it displays.
var columnFields = map[string]func(FlatRecord) any{
	ColumnVOName:      func(r FlatRecord) any { return r.VO },
	ColumnSiteName:    func(r FlatRecord) any { return r.Site },
	ColumnProbeName:   func(r FlatRecord) any { return r.Probe },
	ColumnProjectName: func(r FlatRecord) any { return r.Project },
	ColumnWallHours:   func(r FlatRecord) any { return r.Hours },
}

// CellFor returns the value of column for r. Unknown columns read as "".
func CellFor(column string, r FlatRecord) any {
	field, ok := columnFields[column]
	if !ok {
		return ""
	}
	return field(r)
}

// Report is a column-oriented table. Every Cells entry has the same length
// and the last row is the grand total.
//
// Example JSON:
//
//	{
//	  "title": "OSG Flocking: Usage of OSG Sites for 2025-01-01 00:00:00 - 2025-02-01 00:00:00",
//	  "columns": ["VOName", "SiteName", "ProbeName", "ProjectName", "Wall Hours"],
//	  "cells": {
//	    "VOName": ["VO1", "Total"],
//	    "SiteName": ["A", ""],
//	    "ProbeName": ["P1", ""],
//	    "ProjectName": ["Proj1", ""],
//	    "Wall Hours": [10, 10]
//	  }
//	}
type Report struct {
	Title   string           `json:"title"`
	Columns []string         `json:"columns"`
	Cells   map[string][]any `json:"cells"`
}

// RowCount returns the number of rows, including the total row.
func (r *Report) RowCount() int {
	if len(r.Columns) == 0 {
		return 0
	}
	return len(r.Cells[r.Columns[0]])
}

// Row returns row i in column order.
func (r *Report) Row(i int) []any {
	row := make([]any, len(r.Columns))
	for j, column := range r.Columns {
		row[j] = r.Cells[column][i]
	}
	return row
}

// Rows returns every row in column order.
func (r *Report) Rows() [][]any {
	rows := make([][]any, r.RowCount())
	for i := range rows {
		rows[i] = r.Row(i)
	}
	return rows
}

// Total returns the Wall Hours value of the total row.
func (r *Report) Total() float64 {
	hours := r.Cells[ColumnWallHours]
	if len(hours) == 0 {
		return 0
	}
	total, _ := hours[len(hours)-1].(float64)
	return total
}
