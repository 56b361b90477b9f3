package http

import (
	"net/http"
	"strings"

	"flocking-report/internal/shared/svcerrors"
)

type reportFormat string

const (
	formatJSON reportFormat = "json"
	formatCSV  reportFormat = "csv"
	formatText reportFormat = "text"
	formatHTML reportFormat = "html"
)

// negotiateFormat reads the format query parameter, falling back to the Accept header and then JSON.
func negotiateFormat(r *http.Request) (reportFormat, *svcerrors.ServiceError) {
	if format := strings.ToLower(queryParam(r, "format")); format != "" {
		switch reportFormat(format) {
		case formatJSON, formatCSV, formatText, formatHTML:
			return reportFormat(format), nil
		}
		return "", errUnsupportedFormat(format)
	}

	switch accepted := accept(r); {
	case strings.Contains(accepted, "text/csv"):
		return formatCSV, nil
	case strings.Contains(accepted, "text/html"):
		return formatHTML, nil
	case strings.Contains(accepted, "text/plain"):
		return formatText, nil
	}
	return formatJSON, nil
}
