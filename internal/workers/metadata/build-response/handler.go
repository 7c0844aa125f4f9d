// internal/workers/metadata/build-response/handler.go
package buildresponse

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
	"metadata-workers/internal/models"
)

const TaskType = "build-response"

const (
	StatusCompleted    = "completed"
	StatusWithWarnings = "completed_with_warnings"
)

// Handler merges the generation and compliance results into the single
// response object the process returns to its caller.
type Handler struct {
	config       *Config
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(cfg *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       cfg,
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

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		wrapped := apperrors.NewResponseBuildError(fmt.Sprintf("parse variables: %v", err))
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(wrapped.Code)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, wrapped)
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if len(input.Titles) == 0 && len(input.Descriptions) == 0 {
		return nil, apperrors.NewResponseBuildError("no generated copy on the process instance")
	}

	requestID := input.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	status := StatusCompleted
	if len(input.Warnings) > 0 {
		status = StatusWithWarnings
	}

	output := &Output{
		Response: ResponsePayload{
			RequestID: requestID,
			Status:    status,
			Data: ResponseData{
				GenerationResult: models.GenerationResult{
					Titles:       input.Titles,
					Descriptions: input.Descriptions,
					SocialCopy:   input.SocialCopy,
					Warnings:     warningsOrEmpty(input.Warnings),
				},
				ContentType:         input.ContentType,
				DetectedContentType: input.DetectedContentType,
			},
			Metadata: ResponseMetadata{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Version:   h.config.Version,
			},
		},
	}

	h.logger.Info("response built", map[string]interface{}{
		"requestId": requestID,
		"status":    status,
		"warnings":  len(input.Warnings),
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

// warningsOrEmpty keeps the warnings field a JSON array rather than null.
func warningsOrEmpty(warnings []string) []string {
	if warnings == nil {
		return []string{}
	}
	return warnings
}

func errorCode(err error) string {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		return string(stdErr.Code)
	}
	return "INTERNAL_ERROR"
}
