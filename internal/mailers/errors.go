package mailers

import (
	"fmt"

	"flocking-report/internal/shared/svcerrors"
)

const (
	codeDeliveryFailed = "REP_9003"
)

// errDeliveryFailed returns an error when a message could not be handed to the mail server.
func errDeliveryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeDeliveryFailed, fmt.Errorf("emailDeliveryFailed: %w", cause))
}
