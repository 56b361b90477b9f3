package http

import (
	"net/http"

	"flocking-report/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter carries request outcome details from handlers to the metrics and log middlewares.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	rowCount int // report rows served, -1 when the request produced no report
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
		rowCount:           -1,
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) ErrorCategory() string {
	if w.svcError != nil {
		return w.svcError.Category
	}
	return ""
}

func (w *appResponseWriter) SetRowCount(n int) {
	w.rowCount = n
}

func (w *appResponseWriter) RowCount() int {
	return w.rowCount
}

// setRowCount records n on w when w is the middleware chain's writer.
func setRowCount(w http.ResponseWriter, n int) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetRowCount(n)
	}
}
