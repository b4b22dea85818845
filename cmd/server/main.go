package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	auditqueue "verifydesk/internal/audit"
	audithandler "verifydesk/internal/audit/handler"
	consolehandler "verifydesk/internal/console/handler"
	"verifydesk/internal/dataset"
	"verifydesk/internal/platform/config"
	"verifydesk/internal/platform/httpserver"
	"verifydesk/internal/platform/logger"
	"verifydesk/internal/platform/metrics"
	"verifydesk/internal/tags"
	tagshandler "verifydesk/internal/tags/handler"
	tagsservice "verifydesk/internal/tags/service"
	"verifydesk/internal/templates"
	templateshandler "verifydesk/internal/templates/handler"
	templatesmetrics "verifydesk/internal/templates/metrics"
	templatesservice "verifydesk/internal/templates/service"
	httptransport "verifydesk/internal/transport/http"
	auditmemory "verifydesk/pkg/platform/audit/store/memory"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

// app is everything run starts: the HTTP handler plus the audit plumbing
// behind it.
type app struct {
	router http.Handler
	worker *auditqueue.Worker
	trail  *auditmemory.InMemoryStore
	data   *dataset.Store
}

func newApp(cfg config.Server, log *slog.Logger, reg prometheus.Registerer) (*app, error) {
	var datasetOpts []dataset.Option
	if !cfg.DataAnchor.IsZero() {
		datasetOpts = append(datasetOpts, dataset.WithAnchor(cfg.DataAnchor))
	}
	data := dataset.Build(datasetOpts...)

	trail := auditmemory.NewInMemoryStore(auditmemory.DefaultCapacity)
	queue := auditqueue.NewQueue(auditqueue.DefaultQueueSize)

	templateService, err := templatesservice.New(templates.NewStore(),
		templatesservice.WithLogger(log),
		templatesservice.WithAuditPublisher(queue),
		templatesservice.WithMetrics(templatesmetrics.New(reg)),
	)
	if err != nil {
		return nil, err
	}
	tagService, err := tagsservice.New(tags.NewCatalog(data.Inquiries()),
		tagsservice.WithLogger(log),
		tagsservice.WithAuditPublisher(queue),
	)
	if err != nil {
		return nil, err
	}

	var gatherer prometheus.Gatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	router := httptransport.NewRouter(httptransport.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics.New(reg),
		Gatherer:       gatherer,
	},
		consolehandler.New(data, log),
		templateshandler.New(templateService, log, cfg.AdminToken),
		tagshandler.New(tagService, log, cfg.AdminToken),
		audithandler.New(trail, log, cfg.AdminToken),
	)

	return &app{
		router: router,
		worker: auditqueue.NewWorker(trail, queue.Events(), log),
		trail:  trail,
		data:   data,
	}, nil
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	if cfg.AdminToken == "" {
		log.Warn("VERIFYDESK_ADMIN_TOKEN is empty; template and tag changes are open to every caller")
	}
	a, err := newApp(cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Addr, a.router)

	// The worker outlives the server so events from draining requests persist.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.worker.Run(workerCtx)
	})
	g.Go(func() error {
		log.Info("starting verifydesk", "addr", cfg.Addr, "accounts", len(a.data.Accounts()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		defer stopWorker()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
