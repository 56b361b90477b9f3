package queries

import (
	"flocking-report/internal/shared/svcerrors"
)

// QueryBuilder errors
const (
	CodeInvalidWindow       = "REP_1000"
	codeInvalidIndexPattern = "REP_1001"
)

// ErrInvalidWindow returns an error when a window bound is missing or unparsable.
// Time parsing happens before Build, so callers use it to report parse failures too.
func ErrInvalidWindow(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(CodeInvalidWindow, "invalid time window", cause)
}

func errInvalidIndexPattern() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidIndexPattern, "index pattern is required", nil)
}
