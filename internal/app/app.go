package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"flocking-report/internal/events"
	"flocking-report/internal/flatteners"
	internalhttp "flocking-report/internal/http"
	"flocking-report/internal/mailers"
	"flocking-report/internal/models"
	"flocking-report/internal/queries"
	"flocking-report/internal/renderers"
	"flocking-report/internal/reporters"
	"flocking-report/internal/reports"
	"flocking-report/internal/searchers"
	"flocking-report/internal/shared/configs"
	"flocking-report/internal/shared/filestorages"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/metrics"
	"flocking-report/internal/stores"
	"flocking-report/internal/streams"

	es "github.com/elastic/go-elasticsearch/v8"
)

// Options are command line overrides applied on top of the configuration.
type Options struct {
	// TemplateFile replaces report.template_file when set.
	TemplateFile string
	// Verbose forces debug logging so every report record is logged.
	Verbose bool
}

// App holds all application dependencies and manages lifecycle.
type App struct {
	config      *configs.Config
	appLogger   loggers.Logger
	closeLogger func() error
	esClient    *es.Client
	server      *http.Server

	reportService       reporters.ReportService
	sendRequestConsumer streams.SendRequestConsumer
	backgroundCtx       context.Context
	backgroundCancel    context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts Options) (*App, error) {
	level := config.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	appLogger, closeLogger, err := loggers.New(loggers.Options{Level: level, Format: config.Log.Format, ErrorFile: config.Log.ErrorFile})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "flocking-report").
		Logger()

	app, err := build(config, opts, appLogger)
	if err != nil {
		_ = closeLogger()
		return nil, err
	}
	app.closeLogger = closeLogger
	return app, nil
}

func build(config *configs.Config, opts Options, appLogger loggers.Logger) (*App, error) {
	// Initialize search client
	esClient, err := searchers.NewClient(config.Elasticsearch)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize search client: %w", err)
	}
	searchTimeout := time.Duration(config.Elasticsearch.Timeout) * time.Second
	searcher := searchers.NewAggregationSearcher(esClient, searchTimeout)

	// Initialize renderer
	templateFile := config.Report.TemplateFile
	if opts.TemplateFile != "" {
		templateFile = opts.TemplateFile
	}
	renderer, err := renderers.NewReportRenderer(templateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize archive, optional
	var archiveStore stores.ReportArchiveStore
	if config.Archive.RootDir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.Archive.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		archiveStore = stores.NewReportArchiveStore(fileStorage)
	}

	// Initialize report service
	reportService := reporters.NewReportService(
		queries.NewQueryBuilder(),
		searcher,
		flatteners.NewResultFlattener(),
		reports.NewReportAssembler(),
		renderer,
		mailers.NewReportMailer(config.Email),
		archiveStore,
		reporters.SettingsFromConfig(config),
	)

	// Initialize send stream for background sends requested over http
	sendRequestQueue := streams.NewPartitionedQueue[events.SendRequestedEvent]()
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	sendRequestConsumer := streams.NewSendRequestConsumer(sendRequestQueue, reportService, consumerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, renderer, httpLogger, internalhttp.RouterOptions{
		ArchiveStore:  archiveStore,
		SendProducer:  streams.NewSendRequestProducer(sendRequestQueue),
		ReportTimeout: searchTimeout,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:              config,
		appLogger:           appLogger,
		closeLogger:         func() error { return nil },
		esClient:            esClient,
		server:              server,
		reportService:       reportService,
		sendRequestConsumer: sendRequestConsumer,
	}, nil
}

// Run generates and delivers one report. Metrics are written to the configured
// textfile whether or not the run succeeded.
func (app *App) Run(ctx context.Context, opts reporters.SendOptions) (*reporters.SendResult, error) {
	runLogger := app.appLogger.With().Str(loggers.FieldComponent, "reporter").Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Str(loggers.FieldWindowStart, opts.Window.StartISO()).
		Str(loggers.FieldWindowEnd, opts.Window.EndISO()).
		Bool("test", opts.Test).
		Bool("dry_run", opts.DryRun).
		Msg("running flocking report")

	result, svcErr := app.reportService.Send(ctx, opts)
	app.writeMetrics()
	if svcErr != nil {
		return result, svcErr
	}
	return result, nil
}

// RunRange parses start and end and runs the report for that window. Unparsable
// bounds fail the run like any other error: logged, counted and mailed to the
// admins unless opts.DryRun is set. opts.Window is replaced.
func (app *App) RunRange(ctx context.Context, start, end string, opts reporters.SendOptions) (*reporters.SendResult, error) {
	window, err := models.ParseTimeWindow(start, end)
	if err != nil {
		svcErr := queries.ErrInvalidWindow(err)
		runLogger := app.appLogger.With().Str(loggers.FieldComponent, "reporter").Logger()
		app.reportService.ReportFailure(runLogger.WithContext(ctx), fmt.Sprintf("%s - %s", start, end), opts.DryRun, svcErr)
		app.writeMetrics()
		return nil, svcErr
	}

	opts.Window = window
	return app.Run(ctx, opts)
}

func (app *App) writeMetrics() {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		app.appLogger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting flocking-report service on port %d (log_level=%s, index_pattern=%s, archive_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Report.IndexPattern,
			app.config.Archive.RootDir)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := searchers.Ping(pingCtx, app.esClient); err != nil {
		// Reports fail per request until the cluster is back; the server still starts.
		app.appLogger.Warn().Err(err).Msg("search cluster unreachable")
	}

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.sendRequestConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	err := app.server.Shutdown(ctx)
	if err != nil {
		err = fmt.Errorf("server shutdown failed: %w", err)
	} else {
		app.appLogger.Info().Msg("Server stopped")
	}

	// 2) Stop background consumers; a send in progress finishes first
	app.sendRequestConsumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumers stopped")

	return errors.Join(err, app.Close())
}

// Close releases the error log file.
func (app *App) Close() error {
	return app.closeLogger()
}
