package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/svcerrors"
)

// retryAfterSeconds is advertised on unavailable responses, roughly one queued send.
const retryAfterSeconds = 30

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into an http.HandlerFunc that
// maps returned errors onto ErrorResponse bodies.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		if svcErr.IsServerError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str("errorCategory", svcErr.Category).
				Msg("report request failed")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	logger := loggers.Ctx(r.Context())

	appWriter, isAppWriter := w.(*appResponseWriter)
	if isAppWriter {
		appWriter.SetServiceError(svcErr)
		// A streamed report body has already gone out with its own status.
		if appWriter.Status() != 0 {
			logger.Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Int(loggers.FieldHttpStatus, appWriter.Status()).
				Msg("error after response started, body truncated")
			return
		}
	}

	logger.Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	if svcErr.IsUnavailable() {
		w.Header().Set(headerRetryAfter, strconv.Itoa(retryAfterSeconds))
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(svcErr.HttpStatusCode)

	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
