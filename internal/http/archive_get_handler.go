package http

import (
	"errors"
	"net/http"

	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/renderers"
	"flocking-report/internal/shared/filestorages"
	"flocking-report/internal/shared/svcerrors"
	"flocking-report/internal/stores"
)

type archiveGetHandler struct {
	archiveStore stores.ReportArchiveStore
	renderer     renderers.ReportRenderer
}

func NewArchiveGetHandler(archiveStore stores.ReportArchiveStore, renderer renderers.ReportRenderer) AppHttpHandler {
	return &archiveGetHandler{archiveStore: archiveStore, renderer: renderer}
}

// Handle processes GET /reports/archive/{runID}?start=&end=[&format=] requests.
// The window is part of the archive key, so it must match the run's window.
func (h *archiveGetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runID := urlParam(r, "runID")
	if runID == "" {
		return svcerrors.NewInvalidArgumentError(codeInvalidRunID, "run id is required", nil)
	}
	window, err := models.ParseTimeWindow(queryParam(r, "start"), queryParam(r, "end"))
	if err != nil {
		return queries.ErrInvalidWindow(err)
	}
	format, svcErr := negotiateFormat(r)
	if svcErr != nil {
		return svcErr
	}

	report, err := h.archiveStore.Get(r.Context(), runID, window)
	switch {
	case errors.Is(err, stores.ErrArchiveNotFound):
		return svcerrors.NewNotFoundError(codeArchiveNotFound, "archived report not found", err)
	case errors.Is(err, filestorages.ErrInvalidKey):
		return svcerrors.NewInvalidArgumentError(codeInvalidRunID, "invalid run id", err)
	case err != nil:
		return svcerrors.NewInternalError(codeArchiveGetFailed, err)
	}
	setRowCount(w, report.RowCount()-1)

	return writeReport(w, h.renderer, report, format)
}
