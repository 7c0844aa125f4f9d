// internal/workers/metadata/generate-metadata/handler.go
package generatemetadata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	apperrors "metadata-workers/internal/common/errors"
	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/common/metrics"
	"metadata-workers/internal/common/validation"
	"metadata-workers/internal/models"
	"metadata-workers/internal/seo/generator"
)

const TaskType = "generate-metadata"

const inputSchema = `{
	"type": "object",
	"required": ["content"],
	"properties": {
		"content": {"type": "string"},
		"contentType": {"type": "string"},
		"targetAudience": {"type": "string"},
		"tone": {
			"type": "string",
			"enum": ["", "professional", "casual", "friendly", "authoritative"]
		}
	}
}`

// Handler serves generate-metadata jobs. The generator is injected so the
// same handler works with the template path, the model path, or the
// fallback chain.
type Handler struct {
	config       *Config
	generator    generator.Generator
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(cfg *Config, gen generator.Generator, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       cfg,
		generator:    gen,
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

	output, err := h.execute(ctx, input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	req := models.GenerationRequest{
		Content:        input.Content,
		ContentType:    input.ContentType,
		TargetAudience: input.TargetAudience,
		Tone:           input.Tone,
	}
	if req.ContentType == "" {
		req.ContentType = models.ContentTypeArticle
	}
	if req.TargetAudience == "" {
		req.TargetAudience = h.config.DefaultAudience
	}

	copySet, err := h.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	output := &Output{
		RequestID:           uuid.New().String(),
		Titles:              copySet.Titles,
		Descriptions:        copySet.Descriptions,
		SocialCopy:          copySet.SocialCopy,
		ContentType:         req.ContentType,
		DetectedContentType: copySet.DetectedContentType,
	}

	h.logger.Info("metadata generated", map[string]interface{}{
		"requestId":           output.RequestID,
		"contentType":         output.ContentType,
		"detectedContentType": output.DetectedContentType,
		"titleCount":          len(output.Titles),
	})
	return output, nil
}

// Execute exposes the core pipeline for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
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

func errorCode(err error) string {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		return string(stdErr.Code)
	}
	return "INTERNAL_ERROR"
}
