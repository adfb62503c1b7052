// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/aws"
	"saas-benchmarks/internal/common/camunda"
	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/common/database"
	apperrors "saas-benchmarks/internal/common/errors"
	"saas-benchmarks/internal/common/logger"
	"saas-benchmarks/internal/common/observability"
	"saas-benchmarks/internal/common/validation"
	"saas-benchmarks/pkg/registry"

	// Benchmarks (3)
	ccm "saas-benchmarks/internal/workers/benchmarks/compare-company-metrics"
	cib "saas-benchmarks/internal/workers/benchmarks/compare-industry-benchmarks"
	gbs "saas-benchmarks/internal/workers/benchmarks/generate-benchmark-series"

	// Scoring, efficiency and curves (5)
	pcc "saas-benchmarks/internal/workers/cohort/project-cohort-curves"
	ese "saas-benchmarks/internal/workers/efficiency/evaluate-sales-efficiency"
	afe "saas-benchmarks/internal/workers/funding/analyze-funding-efficiency"
	cir "saas-benchmarks/internal/workers/scoring/calculate-ipo-readiness"
	crs "saas-benchmarks/internal/workers/scoring/calculate-resilience-score"

	// Planning and positioning (3)
	ps "saas-benchmarks/internal/workers/planning/project-scenarios"
	ss "saas-benchmarks/internal/workers/planning/save-scenario"
	gcp "saas-benchmarks/internal/workers/positioning/generate-competitive-peers"

	// Infrastructure and reporting (3)
	vcm "saas-benchmarks/internal/workers/infrastructure/validate-company-metrics"
	nrr "saas-benchmarks/internal/workers/reporting/notify-report-ready"
	pbr "saas-benchmarks/internal/workers/reporting/publish-benchmark-report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting worker manager", map[string]interface{}{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		log.Warn("metrics exporter unavailable, continuing with tracing only", map[string]interface{}{
			"error": err.Error(),
		})
	}

	ctx := context.Background()
	rc := camunda.DefaultRetryConfig

	// --- Zeebe ---
	zeebeClient, err := camunda.Connect(ctx, cfg.Camunda, rc, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebeClient.Close()

	// --- PostgreSQL ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres client failed", zap.Error(err))
	}
	defer pg.Close()
	if err := camunda.RetryWithBackoff(ctx, rc, log, "postgres connection", pg.Ping); err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	scenarios := database.NewScenarioRepository(pg.DB, cfg.Benchmarks.ScenarioTable)
	if err := scenarios.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("scenario schema failed", zap.Error(err))
	}

	// --- Redis ---
	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client failed", zap.Error(err))
	}
	defer rdb.Close()
	if err := camunda.RetryWithBackoff(ctx, rc, log, "redis connection", rdb.Ping); err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	reports := database.NewReportStore(rdb.Client, cfg.Benchmarks.ReportKeyPrefix, cfg.Benchmarks.ReportTTL)

	// --- Elasticsearch (optional) ---
	var indexer pbr.ReportIndex
	if cfg.Database.Elasticsearch.GetURL() != "" {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			zapLog.Fatal("elasticsearch client failed", zap.Error(err))
		}
		if err := camunda.RetryWithBackoff(ctx, rc, log, "elasticsearch connection", es.Ping); err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		indexer = database.NewReportIndexer(es.Client, cfg.Benchmarks.ReportIndex)
	} else {
		log.Warn("elasticsearch not configured, reports will not be indexed", nil)
	}

	// --- Notifications ---
	notifyDeps := nrr.ServiceDependencies{Reports: reports}
	if cfg.Notifications.EmailEnabled {
		mailer, err := aws.NewSESClient(ctx, cfg.Notifications.AWSRegion, cfg.Notifications.SESFromEmail)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		notifyDeps.Mailer = mailer
	}
	if cfg.Notifications.SNSEnabled {
		events, err := aws.NewSNSClient(ctx, cfg.Notifications.AWSRegion, cfg.Notifications.SNSTopicARN)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		notifyDeps.Events = events
	}

	// --- Registry ---
	reg, err := registry.LoadRegistry(cfg.Benchmarks.RegistryPath)
	if err != nil {
		zapLog.Fatal("activity registry failed", zap.Error(apperrors.NewRegistryLoadError(cfg.Benchmarks.RegistryPath, err)))
	}
	validator, err := validation.NewValidator(reg)
	if err != nil {
		zapLog.Fatal("schema compile failed", zap.Error(err))
	}

	engine := benchmark.NewEngine()

	// --- Workers ---
	timeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	var workers []worker.JobWorker
	start := func(taskType string, h camunda.HandlerFunc) {
		if jw := camunda.StartWorker(zeebeClient, taskType, config.GetWorkerConfig(cfg, taskType), h, obs, log); jw != nil {
			workers = append(workers, jw)
		}
	}

	{
		c := vcm.LoadConfig()
		c.Timeout = timeout(vcm.TaskType)
		start(vcm.TaskType, vcm.NewHandler(c, validator, engine, log).Handle)
	}
	{
		c := afe.LoadConfig()
		c.Timeout = timeout(afe.TaskType)
		start(afe.TaskType, afe.NewHandler(c, engine, log).Handle)
	}
	{
		c := ccm.LoadConfig()
		c.Timeout = timeout(ccm.TaskType)
		start(ccm.TaskType, ccm.NewHandler(c, engine, log).Handle)
	}
	{
		c := gbs.LoadConfig()
		c.Timeout = timeout(gbs.TaskType)
		start(gbs.TaskType, gbs.NewHandler(c, engine, log).Handle)
	}
	{
		c := cib.LoadConfig()
		c.Timeout = timeout(cib.TaskType)
		start(cib.TaskType, cib.NewHandler(c, engine, log).Handle)
	}
	{
		c := cir.LoadConfig()
		c.Timeout = timeout(cir.TaskType)
		start(cir.TaskType, cir.NewHandler(c, engine, log).Handle)
	}
	{
		c := crs.LoadConfig()
		c.Timeout = timeout(crs.TaskType)
		start(crs.TaskType, crs.NewHandler(c, engine, log).Handle)
	}
	{
		c := ese.LoadConfig()
		c.Timeout = timeout(ese.TaskType)
		start(ese.TaskType, ese.NewHandler(c, engine, log).Handle)
	}
	{
		c := pcc.LoadConfig()
		c.Timeout = timeout(pcc.TaskType)
		start(pcc.TaskType, pcc.NewHandler(c, engine, log).Handle)
	}
	{
		c := gcp.LoadConfig(cfg.Benchmarks.PeerSeed)
		c.Timeout = timeout(gcp.TaskType)
		start(gcp.TaskType, gcp.NewHandler(c, log).Handle)
	}
	{
		c := ps.LoadConfig()
		c.Timeout = timeout(ps.TaskType)
		start(ps.TaskType, ps.NewHandler(c, scenarios, engine, log).Handle)
	}
	{
		c := ss.LoadConfig()
		c.Timeout = timeout(ss.TaskType)
		start(ss.TaskType, ss.NewHandler(c, scenarios, engine, log).Handle)
	}
	{
		c := pbr.LoadConfig(cfg.Benchmarks.PeerSeed)
		c.Timeout = timeout(pbr.TaskType)
		c.RequireIndex = cfg.Benchmarks.RequireIndex
		start(pbr.TaskType, pbr.NewHandler(c, engine, reports, indexer, log).Handle)
	}
	{
		c := nrr.LoadConfig(cfg.Notifications)
		c.Timeout = timeout(nrr.TaskType)
		start(nrr.TaskType, nrr.NewHandler(c, notifyDeps, log).Handle)
	}

	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	// --- Health, readiness and metrics ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]error{
			"zeebe":    camunda.HealthCheck(r.Context(), zeebeClient, 2*time.Second),
			"postgres": pg.Ping(r.Context()),
			"redis":    rdb.Ping(r.Context()),
		}
		body := map[string]string{"status": "ready"}
		status := http.StatusOK
		for name, err := range checks {
			if err != nil {
				body[name] = err.Error()
				body["status"] = "not ready"
				status = http.StatusServiceUnavailable
			}
		}
		writeStatus(w, status, body)
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("http server listening", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping workers", nil)
	for _, jw := range workers {
		jw.Close()
		jw.AwaitClose()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if obs != nil {
		_ = obs.Shutdown(shutdownCtx)
	}
	log.Info("worker manager stopped", nil)
}

func writeStatus(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
