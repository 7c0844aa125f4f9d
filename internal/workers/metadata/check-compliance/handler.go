// internal/workers/metadata/check-compliance/handler.go
package checkcompliance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"metadata-workers/internal/common/database"
	apperrors "metadata-workers/internal/common/errors"
	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/common/metrics"
	"metadata-workers/internal/common/validation"
	"metadata-workers/internal/seo/compliance"
)

const TaskType = "check-compliance"

const cacheKeyPrefix = "compliance:"

const inputSchema = `{
	"type": "object",
	"required": ["content"],
	"properties": {
		"content": {"type": "string"}
	}
}`

// Handler serves check-compliance jobs. Results are cached by content hash;
// a nil redis client disables caching without disabling the worker.
type Handler struct {
	config       *Config
	checker      *compliance.Checker
	redis        *database.RedisClient
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(cfg *Config, checker *compliance.Checker, redis *database.RedisClient, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       cfg,
		checker:      checker,
		redis:        redis,
		errorHandler: apperrors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.parseInput(job.Variables)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	output := h.execute(ctx, input)
	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) parseInput(variables string) (*Input, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(variables), &raw); err != nil {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("parse variables: %v", err))
	}

	result, err := validation.ValidateInput(raw, inputSchema)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if !result.Valid {
		return nil, apperrors.NewValidationFailedError(validation.FormatErrors(result))
	}

	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("decode input: %v", err))
	}
	if input.Content == "" {
		return nil, apperrors.NewContentMissingError("content variable is empty")
	}
	return &input, nil
}

// execute never fails: the checker is pure and cache errors only degrade to
// a fresh computation.
func (h *Handler) execute(ctx context.Context, input *Input) *Output {
	key := cacheKey(input.Content)

	if cached, ok := h.cacheGet(ctx, key); ok {
		cached.Cached = true
		return cached
	}

	warnings := h.checker.Check(input.Content)
	for _, w := range warnings {
		metrics.ComplianceWarnings.WithLabelValues(warningList(w)).Inc()
	}

	output := &Output{
		Warnings: warnings,
		Passed:   len(warnings) == 0,
	}
	h.cacheSet(ctx, key, output)

	h.logger.Info("compliance check finished", map[string]interface{}{
		"warnings": len(warnings),
		"passed":   output.Passed,
	})
	return output
}

// Execute exposes the core pipeline for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	return h.execute(ctx, input)
}

func (h *Handler) cacheGet(ctx context.Context, key string) (*Output, bool) {
	if h.redis == nil {
		return nil, false
	}
	raw, err := h.redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var output Output
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		// Corrupt entry; drop it so the recomputed result can take its place.
		if delErr := h.redis.Del(ctx, key); delErr != nil {
			h.logger.Warn("failed to evict corrupt cache entry", map[string]interface{}{
				"key":   key,
				"error": delErr.Error(),
			})
		}
		return nil, false
	}
	return &output, true
}

func (h *Handler) cacheSet(ctx context.Context, key string, output *Output) {
	if h.redis == nil {
		return
	}
	raw, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, key, string(raw), h.config.CacheTTL); err != nil {
		h.logger.Warn("compliance cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	if _, err = cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func cacheKey(content string) string {
	sum := sha256.Sum256([]byte(content))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func warningList(warning string) string {
	switch {
	case strings.HasPrefix(warning, "Red"):
		return "red"
	case strings.HasPrefix(warning, "Yellow"):
		return "yellow"
	default:
		return "regional"
	}
}

func errorCode(err error) string {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		return string(stdErr.Code)
	}
	return "INTERNAL_ERROR"
}
