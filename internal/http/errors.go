package http

import (
	"fmt"

	"flocking-report/internal/reporters"
	"flocking-report/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "REP_1002"
	codeInvalidRunID      = "REP_1004"
	codeArchiveNotFound   = "REP_1005"
	codeArchiveGetFailed  = "REP_9008"
)

func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported format %q, want one of json, csv, text, html", format), nil)
}

// errRenderFailed matches the code the report service uses for rendering failures.
func errRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(reporters.CodeRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}
