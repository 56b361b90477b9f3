package http

import (
	"encoding/json"
	"net/http"

	"flocking-report/internal/shared/svcerrors"
	"flocking-report/internal/stores"
)

const codeArchiveListFailed = "REP_9005"

type archiveListHandler struct {
	archiveStore stores.ReportArchiveStore
}

func NewArchiveListHandler(archiveStore stores.ReportArchiveStore) AppHttpHandler {
	return &archiveListHandler{archiveStore: archiveStore}
}

// Handle processes GET /reports/archive requests.
func (h *archiveListHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runs, err := h.archiveStore.List(r.Context())
	if err != nil {
		return svcerrors.NewInternalError(codeArchiveListFailed, err)
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(runs)
	return nil
}
