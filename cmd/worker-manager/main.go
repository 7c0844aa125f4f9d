// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"metadata-workers/internal/common/camunda"
	"metadata-workers/internal/common/config"
	"metadata-workers/internal/common/database"
	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/common/observability"
	"metadata-workers/internal/seo/compliance"
	"metadata-workers/internal/seo/generator"
	"metadata-workers/pkg/registry"

	br "metadata-workers/internal/workers/metadata/build-response"
	cc "metadata-workers/internal/workers/metadata/check-compliance"
	gm "metadata-workers/internal/workers/metadata/generate-metadata"
)

// retryWithBackoff attempts an operation with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Activity registry ---
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Warn("activity registry not loaded", zap.Error(err), zap.String("path", cfg.Registry.Path))
	} else {
		zapLog.Info("activity registry loaded",
			zap.String("version", reg.Version),
			zap.Strings("taskTypes", reg.TaskTypes()),
		)
	}

	// --- Init Zeebe client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebeClient.Close()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init Redis with retry; the compliance cache is optional ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Warn("redis unavailable, compliance caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Build the generation chain ---
	templateGen := generator.NewTemplateGenerator(generator.TemplateOptions{
		TitleCount:       cfg.SEO.TitleCount,
		DescriptionCount: cfg.SEO.DescriptionCount,
		SocialCount:      cfg.SEO.SocialCount,
		DefaultAudience:  cfg.SEO.DefaultAudience,
	})

	var gen generator.Generator = templateGen
	if cfg.APIs.GenAI.Enabled {
		aiGen, err := generator.NewOpenAIGenerator(cfg.APIs.GenAI,
			cfg.SEO.TitleCount, cfg.SEO.DescriptionCount, cfg.SEO.SocialCount)
		if err != nil {
			zapLog.Warn("genai generator unavailable, using templates only", zap.Error(err))
		} else {
			gen = generator.NewFallbackGenerator(aiGen, templateGen, log)
			zapLog.Info("genai generator enabled with template fallback",
				zap.String("model", cfg.APIs.GenAI.Model))
		}
	}

	checker := compliance.NewChecker(compliance.DefaultWordLists().Merge(
		cfg.SEO.Compliance.RedWords,
		cfg.SEO.Compliance.YellowWords,
		cfg.SEO.Compliance.RegionalTerms,
	))

	// --- Register workers ---
	var workers []*camunda.CamundaWorker

	if config.IsWorkerEnabled(cfg, gm.TaskType) {
		handler := gm.NewHandler(gm.LoadConfig(cfg), gen, log)
		workers = append(workers, startWorker(zeebeClient, gm.TaskType, cfg, instrument(handler, obs), zapLog))
	}

	if config.IsWorkerEnabled(cfg, cc.TaskType) {
		handler := cc.NewHandler(cc.LoadConfig(cfg), checker, redisClient, log)
		workers = append(workers, startWorker(zeebeClient, cc.TaskType, cfg, instrument(handler, obs), zapLog))
	}

	if config.IsWorkerEnabled(cfg, br.TaskType) {
		handler := br.NewHandler(br.LoadConfig(cfg), log)
		workers = append(workers, startWorker(zeebeClient, br.TaskType, cfg, instrument(handler, obs), zapLog))
	}

	zapLog.Info("All workers registered", zap.Int("count", len(workers)))

	// --- Health & metrics server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := zeebeClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// instrumentedHandler records per-job counters and durations through the
// otel meter on top of the prometheus metrics the handlers record
// themselves.
type instrumentedHandler struct {
	inner camunda.JobHandler
	obs   *observability.Observability
}

func instrument(inner camunda.JobHandler, obs *observability.Observability) camunda.JobHandler {
	return &instrumentedHandler{inner: inner, obs: obs}
}

func (h *instrumentedHandler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.inner.Handle(client, job)
	ctx := context.Background()
	h.obs.RecordJobProcessed(ctx, job.Type)
	h.obs.RecordJobDuration(ctx, time.Since(start), job.Type)
}

func startWorker(client *camunda.Client, taskType string, cfg *config.Config, handler camunda.JobHandler, log *zap.Logger) *camunda.CamundaWorker {
	wcfg := config.GetWorkerConfig(cfg, taskType)
	return camunda.NewWorker(
		client.GetClient(),
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handler,
		log,
	)
}
