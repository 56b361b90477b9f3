package http

import (
	"encoding/json"
	"net/http"

	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/renderers"
	"flocking-report/internal/reporters"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type flockingReportHandler struct {
	reportService reporters.ReportService
	renderer      renderers.ReportRenderer
}

func NewFlockingReportHandler(reportService reporters.ReportService, renderer renderers.ReportRenderer) AppHttpHandler {
	return &flockingReportHandler{
		reportService: reportService,
		renderer:      renderer,
	}
}

// Handle processes GET /reports/flocking?start=&end=[&probes=][&format=] requests.
func (h *flockingReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	window, err := models.ParseTimeWindow(queryParam(r, "start"), queryParam(r, "end"))
	if err != nil {
		return queries.ErrInvalidWindow(err)
	}
	format, svcErr := negotiateFormat(r)
	if svcErr != nil {
		return svcErr
	}

	// An explicit empty probes parameter is an empty allow-list, not the configured one.
	var probes models.ProbeFilter
	if hasQueryParam(r, "probes") {
		probes = models.ParseProbeList(queryParam(r, "probes"))
	}

	report, svcErr := h.reportService.Generate(r.Context(), window, probes)
	if svcErr != nil {
		return svcErr
	}
	setRowCount(w, report.RowCount()-1)

	return writeReport(w, h.renderer, report, format)
}

// writeReport writes report in the negotiated format.
func writeReport(w http.ResponseWriter, renderer renderers.ReportRenderer, report *models.Report, format reportFormat) error {
	switch format {
	case formatCSV:
		data, err := renderer.CSV(report)
		if err != nil {
			return errRenderFailed(err)
		}
		return writeBody(w, contentTypeCSV, data)
	case formatText:
		return writeBody(w, contentTypeText, []byte(renderer.Text(report)))
	case formatHTML:
		html, err := renderer.HTML(report)
		if err != nil {
			return errRenderFailed(err)
		}
		return writeBody(w, contentTypeHTML, []byte(html))
	default:
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
		return nil
	}
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) error {
	w.Header().Set(headerContentType, contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return nil
}
