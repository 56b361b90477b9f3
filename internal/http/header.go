package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerAccept      = "accept"
	headerRetryAfter  = "retry-after"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func accept(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get(headerAccept)))
}

func queryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func hasQueryParam(r *http.Request, name string) bool {
	return r.URL.Query().Has(name)
}

func urlParam(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}
