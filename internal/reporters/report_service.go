package reporters

import (
	"context"
	"fmt"
	"iter"
	"time"

	"flocking-report/internal/flatteners"
	"flocking-report/internal/mailers"
	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/renderers"
	"flocking-report/internal/reports"
	"flocking-report/internal/searchers"
	"flocking-report/internal/shared/configs"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/svcerrors"
	"flocking-report/internal/shared/ulid"
	"flocking-report/internal/stores"
)

const errorSubject = "Error running OSG Flocking Report"

// Settings are the deployment's report parameters.
type Settings struct {
	IndexPattern string
	Probes       models.ProbeFilter
	SortRecords  bool
	To           []string
	TestTo       []string
	AdminTo      []string
}

// SettingsFromConfig reads Settings from the loaded configuration.
func SettingsFromConfig(cfg *configs.Config) Settings {
	return Settings{
		IndexPattern: cfg.Report.IndexPattern,
		Probes:       models.ParseProbeList(cfg.Report.ProbeList),
		SortRecords:  cfg.Report.SortRecords,
		To:           cfg.Email.To,
		TestTo:       cfg.Email.TestTo,
		AdminTo:      cfg.Email.AdminTo,
	}
}

// SendOptions controls a single Send.
type SendOptions struct {
	Window models.TimeWindow
	// Probes replaces the configured allow-list when non-nil.
	Probes models.ProbeFilter
	// Test mails the test recipients instead of the report list.
	Test bool
	// DryRun renders the report without mailing or archiving it.
	DryRun bool
}

// SendResult describes a finished Send. Report and Text are set once the report was rendered.
type SendResult struct {
	RunID      string
	Report     *models.Report
	Text       string
	Recipients []string
	Sent       bool
	Archived   bool
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Generate queries the store for window and returns the assembled report.
	// A nil probes uses the configured allow-list.
	Generate(ctx context.Context, window models.TimeWindow, probes models.ProbeFilter) (*models.Report, *svcerrors.ServiceError)
	// Send generates, renders, mails and archives one report. Failures are mailed to the admins
	// unless opts.DryRun is set.
	Send(ctx context.Context, opts SendOptions) (*SendResult, *svcerrors.ServiceError)
	// ReportFailure records a send that failed before a window could be built, such as
	// unparsable bounds. requested describes the range as the caller gave it. The failure
	// is logged and mailed to the admins unless dryRun is set.
	ReportFailure(ctx context.Context, requested string, dryRun bool, svcErr *svcerrors.ServiceError)
}

type reportService struct {
	queryBuilder queries.QueryBuilder
	searcher     searchers.AggregationSearcher
	flattener    flatteners.ResultFlattener
	assembler    reports.ReportAssembler
	renderer     renderers.ReportRenderer
	mailer       mailers.ReportMailer
	archiveStore stores.ReportArchiveStore // nil disables archiving
	settings     Settings
}

func NewReportService(
	queryBuilder queries.QueryBuilder,
	searcher searchers.AggregationSearcher,
	flattener flatteners.ResultFlattener,
	assembler reports.ReportAssembler,
	renderer renderers.ReportRenderer,
	mailer mailers.ReportMailer,
	archiveStore stores.ReportArchiveStore,
	settings Settings,
) ReportService {
	return &reportService{
		queryBuilder: queryBuilder,
		searcher:     searcher,
		flattener:    flattener,
		assembler:    assembler,
		renderer:     renderer,
		mailer:       mailer,
		archiveStore: archiveStore,
		settings:     settings,
	}
}

func (s *reportService) Generate(ctx context.Context, window models.TimeWindow, probes models.ProbeFilter) (*models.Report, *svcerrors.ServiceError) {
	report, svcErr := s.generate(ctx, window, probes, modeGenerate)
	metricRunsTotal.WithLabelValues(modeGenerate, codeOf(svcErr)).Inc()
	return report, svcErr
}

func (s *reportService) generate(ctx context.Context, window models.TimeWindow, probes models.ProbeFilter, mode string) (*models.Report, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	if probes == nil {
		probes = s.settings.Probes
	}

	req, err := s.queryBuilder.Build(window, probes, s.settings.IndexPattern)
	if err != nil {
		return nil, asServiceError(err)
	}
	logger.Debug().
		Str(loggers.FieldIndexPattern, req.IndexPattern).
		Str(loggers.FieldWindowStart, window.StartISO()).
		Str(loggers.FieldWindowEnd, window.EndISO()).
		Strs("probes", req.Probes.Values()).
		Msg("searching flocking usage")

	tree, err := s.searcher.Search(ctx, req)
	if err != nil {
		return nil, asServiceError(err)
	}

	records := s.flattener.Flatten(tree)
	if s.settings.SortRecords {
		records = reports.Sorted(records)
	}
	report := s.assembler.Assemble(reports.Title(window), logRecords(logger, records), models.DefaultColumns)

	recordCount := report.RowCount() - 1
	metricRecordsTotal.WithLabelValues(mode).Add(float64(recordCount))
	logger.Info().
		Int(loggers.FieldRowCount, recordCount).
		Float64(loggers.FieldWallHours, report.Total()).
		Msg("report assembled")

	return report, nil
}

func (s *reportService) Send(ctx context.Context, opts SendOptions) (*SendResult, *svcerrors.ServiceError) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	result, svcErr := s.send(ctx, runID, opts)
	metricRunsTotal.WithLabelValues(modeSend, codeOf(svcErr)).Inc()
	if svcErr != nil {
		s.fail(ctx, opts.Window.String(), opts.DryRun, svcErr)
		return result, svcErr
	}

	metricLastWallHours.Set(result.Report.Total())
	metricLastSuccessTimestamp.SetToCurrentTime()
	return result, nil
}

func (s *reportService) send(ctx context.Context, runID string, opts SendOptions) (*SendResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	result := &SendResult{RunID: runID}

	report, svcErr := s.generate(ctx, opts.Window, opts.Probes, modeSend)
	if svcErr != nil {
		return result, svcErr
	}
	result.Report = report

	html, err := s.renderer.HTML(report)
	if err != nil {
		return result, errRenderFailed(err)
	}
	result.Text = s.renderer.Text(report)
	attachment, err := s.renderer.CSV(report)
	if err != nil {
		return result, errRenderFailed(err)
	}

	if opts.DryRun {
		logger.Info().Msg("dry run, report not sent")
		return result, nil
	}

	recipients := s.settings.To
	if opts.Test {
		recipients = s.settings.TestTo
	}
	result.Recipients = recipients

	err = s.mailer.SendReport(ctx, mailers.ReportMessage{
		To:             recipients,
		Subject:        report.Title,
		HTMLBody:       html,
		TextBody:       result.Text,
		AttachmentName: attachmentName(opts.Window),
		Attachment:     attachment,
	})
	if err != nil {
		return result, asServiceError(err)
	}
	result.Sent = true

	// The report is already delivered; an archive failure is logged, not returned.
	if s.archiveStore != nil {
		if err := s.archiveStore.Save(ctx, runID, opts.Window, report, html); err != nil {
			archiveErr := errArchiveFailed(err)
			logger.Error().Err(archiveErr).Str(loggers.FieldErrorCode, archiveErr.Code).Msg("failed to archive report")
		} else {
			result.Archived = true
		}
	}

	logger.Info().Strs("to", recipients).Bool("test", opts.Test).Msg("flocking report sent")
	return result, nil
}

func (s *reportService) ReportFailure(ctx context.Context, requested string, dryRun bool, svcErr *svcerrors.ServiceError) {
	metricRunsTotal.WithLabelValues(modeSend, codeOf(svcErr)).Inc()
	s.fail(ctx, requested, dryRun, svcErr)
}

func (s *reportService) fail(ctx context.Context, requested string, dryRun bool, svcErr *svcerrors.ServiceError) {
	loggers.Ctx(ctx).Error().
		Err(svcErr).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("window", requested).
		Msg("flocking report failed")
	s.notifyAdmins(ctx, requested, dryRun, svcErr)
}

func (s *reportService) notifyAdmins(ctx context.Context, requested string, dryRun bool, svcErr *svcerrors.ServiceError) {
	if dryRun || len(s.settings.AdminTo) == 0 {
		return
	}

	body := fmt.Sprintf("%s: Error running OSG Flocking Report for %s.\n\n%v\n",
		time.Now().UTC().Format(time.RFC3339), requested, svcErr)
	// The run's context may be what failed.
	if err := s.mailer.SendError(context.WithoutCancel(ctx), s.settings.AdminTo, errorSubject, body); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Msg("failed to send error notification")
	}
}

// logRecords logs each record at debug level as it is consumed.
func logRecords(logger *loggers.Logger, records iter.Seq[models.FlatRecord]) iter.Seq[models.FlatRecord] {
	return func(yield func(models.FlatRecord) bool) {
		for record := range records {
			logger.Debug().
				Str("site", record.Site).
				Str("vo", record.VO).
				Str("probe", record.Probe).
				Str("project", record.Project).
				Float64(loggers.FieldWallHours, record.Hours).
				Msg("record")
			if !yield(record) {
				return
			}
		}
	}
}

func attachmentName(window models.TimeWindow) string {
	return fmt.Sprintf("osg_flocking_%s_%s.csv", window.Start.UTC().Format("20060102"), window.End.UTC().Format("20060102"))
}

func codeOf(svcErr *svcerrors.ServiceError) string {
	if svcErr == nil {
		return ""
	}
	return svcErr.Code
}
