package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"flocking-report/internal/events"
	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/shared/svcerrors"
	"flocking-report/internal/streams"
)

const (
	codeInvalidFlag      = "REP_1003"
	codeSendQueueFull    = "REP_9006"
	codeSendQueueFailure = "REP_9007"
)

// SendAcceptedResponse is returned once a send request is queued.
type SendAcceptedResponse struct {
	RequestID string `json:"requestId"`
}

type sendReportHandler struct {
	producer streams.SendRequestProducer
}

func NewSendReportHandler(producer streams.SendRequestProducer) AppHttpHandler {
	return &sendReportHandler{producer: producer}
}

// Handle processes POST /reports/flocking/send?start=&end=[&probes=][&test=][&dryrun=] requests.
// The report is generated and mailed in the background.
func (h *sendReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	window, err := models.ParseTimeWindow(queryParam(r, "start"), queryParam(r, "end"))
	if err != nil {
		return queries.ErrInvalidWindow(err)
	}
	test, svcErr := boolParam(r, "test")
	if svcErr != nil {
		return svcErr
	}
	dryRun, svcErr := boolParam(r, "dryrun")
	if svcErr != nil {
		return svcErr
	}

	event := events.SendRequestedEvent{
		RequestID:   requestID(r),
		WindowStart: window.Start,
		WindowEnd:   window.End,
		Test:        test,
		DryRun:      dryRun,
	}
	if hasQueryParam(r, "probes") {
		event.Probes = models.ParseProbeList(queryParam(r, "probes"))
	}

	if err := h.producer.Produce(r.Context(), event); err != nil {
		if errors.Is(err, streams.ErrQueueFull) {
			return svcerrors.NewUnavailableError(codeSendQueueFull, "send queue is full, retry later", err)
		}
		return svcerrors.NewInternalError(codeSendQueueFailure, err)
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(SendAcceptedResponse{RequestID: event.RequestID})
	return nil
}

func boolParam(r *http.Request, name string) (bool, *svcerrors.ServiceError) {
	value := queryParam(r, name)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, svcerrors.NewInvalidArgumentError(codeInvalidFlag, name+" must be a boolean", err)
	}
	return b, nil
}
