package reporters

import (
	"fmt"

	"flocking-report/internal/shared/svcerrors"
)

const (
	CodeRenderFailed  = "REP_9002"
	CodeArchiveFailed = "REP_9004"
)

// errRenderFailed returns an error when the report cannot be rendered for delivery.
func errRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}

// errArchiveFailed returns an error when a sent report cannot be archived.
func errArchiveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(CodeArchiveFailed, fmt.Errorf("reportArchiveFailed: %w", cause))
}

// asServiceError keeps collaborator ServiceErrors as they are and wraps anything else as undefined.
func asServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	return svcerrors.NewInternalErrorUndefined(err)
}
