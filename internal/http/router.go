package http

import (
	"net/http"
	"time"

	"flocking-report/internal/renderers"
	"flocking-report/internal/reporters"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/metrics"
	"flocking-report/internal/stores"
	"flocking-report/internal/streams"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// ArchiveStore enables GET /reports/archive and GET /reports/archive/{runID} when set.
	ArchiveStore stores.ReportArchiveStore
	// SendProducer enables POST /reports/flocking/send when set.
	SendProducer streams.SendRequestProducer
	// ReportTimeout bounds a single report request. Zero means no limit.
	ReportTimeout time.Duration
}

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reporters.ReportService, renderer renderers.ReportRenderer, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	flockingReportHandler := NewFlockingReportHandler(reportService, renderer)

	// Routes
	router.Route("/reports", func(r chi.Router) {
		if opts.ReportTimeout > 0 {
			r.Use(middleware.Timeout(opts.ReportTimeout))
		}
		r.Get("/flocking", errorHandlingAdapter(flockingReportHandler))
		if opts.SendProducer != nil {
			r.Post("/flocking/send", errorHandlingAdapter(NewSendReportHandler(opts.SendProducer)))
		}
		if opts.ArchiveStore != nil {
			r.Get("/archive", errorHandlingAdapter(NewArchiveListHandler(opts.ArchiveStore)))
			r.Get("/archive/{runID}", errorHandlingAdapter(NewArchiveGetHandler(opts.ArchiveStore, renderer)))
		}
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
