package searchers

import (
	"errors"
	"fmt"

	"flocking-report/internal/shared/svcerrors"
)

// Searcher errors
const (
	CodeQueryExecutionFailed = "REP_9000"
	CodeMalformedTree        = "REP_9001"
)

// ErrMalformedTree marks a reply whose aggregation nesting does not match the request.
var ErrMalformedTree = errors.New("malformed aggregation tree")

// errQueryExecutionFailed passes a store failure through with its cause unmodified.
func errQueryExecutionFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(CodeQueryExecutionFailed, "search execution failed", cause)
}

// errMalformedTree returns an error when the reply cannot be read as the requested hierarchy.
func errMalformedTree(format string, args ...any) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeMalformedTree, fmt.Errorf("%w: %s", ErrMalformedTree, fmt.Sprintf(format, args...)))
}
