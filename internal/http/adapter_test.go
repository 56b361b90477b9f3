package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flocking-report/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		status     int
		want       ErrorResponse
		retryAfter string
	}{
		{
			name:   "invalid window",
			err:    fmt.Errorf("generate: %w", svcerrors.NewInvalidArgumentError("REP_1000", "invalid time window", nil)),
			status: http.StatusBadRequest,
			want:   ErrorResponse{ErrorCategory: "invalid_argument", ErrorCode: "REP_1000", ErrorDescription: "invalid time window"},
		},
		{
			name:   "malformed tree",
			err:    svcerrors.NewInternalError("REP_9001", assert.AnError),
			status: http.StatusInternalServerError,
			want:   ErrorResponse{ErrorCategory: "internal", ErrorCode: "REP_9001", ErrorDescription: "internal server error"},
		},
		{
			name:   "plain error",
			err:    assert.AnError,
			status: http.StatusInternalServerError,
			want:   ErrorResponse{ErrorCategory: "internal", ErrorCode: "SYS_9001", ErrorDescription: "internal server error"},
		},
		{
			name:   "search upstream",
			err:    svcerrors.NewUpstreamError("REP_9000", "search execution failed", assert.AnError),
			status: http.StatusBadGateway,
			want:   ErrorResponse{ErrorCategory: "upstream", ErrorCode: "REP_9000", ErrorDescription: "search execution failed"},
		},
		{
			name:       "send queue full",
			err:        svcerrors.NewUnavailableError("REP_9006", "send queue is full", nil),
			status:     http.StatusServiceUnavailable,
			want:       ErrorResponse{ErrorCategory: "unavailable", ErrorCode: "REP_9006", ErrorDescription: "send queue is full"},
			retryAfter: "30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/reports/flocking", nil)
			req.Header.Set(headerRequestID, "req-"+tt.name)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.retryAfter, rr.Header().Get("Retry-After"))

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			tt.want.RequestID = "req-" + tt.name
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
			return nil
		},
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/flocking", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}

func TestErrorHandlingAdapter_ResponseAlreadyStarted(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set(headerContentType, contentTypeCSV)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("VOName,SiteName\n"))
			return svcerrors.NewInternalError("REP_9002", assert.AnError)
		},
	})

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)
	handler.ServeHTTP(appWriter, httptest.NewRequest(http.MethodGet, "/reports/flocking?format=csv", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeCSV, rr.Header().Get("Content-Type"))
	assert.Equal(t, "VOName,SiteName\n", rr.Body.String())
	assert.Equal(t, "REP_9002", appWriter.ErrorCode())
}

// testHandler wraps a function to implement AppHttpHandler interface for testing
type testHandler struct {
	handleFunc func(w http.ResponseWriter, r *http.Request) error
}

func (h *testHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.handleFunc(w, r)
}
