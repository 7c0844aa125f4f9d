package generator

import (
	"context"

	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/common/metrics"
	"metadata-workers/internal/models"
)

// FallbackGenerator tries the primary backend and silently falls back to the
// secondary on any error. The request never fails because the model path is
// down; the template path always produces usable copy.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	logger   logger.Logger
}

func NewFallbackGenerator(primary, fallback Generator, log logger.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, fallback: fallback, logger: log}
}

func (g *FallbackGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedCopy, error) {
	result, err := g.primary.Generate(ctx, req)
	if err == nil {
		return result, nil
	}

	reason := "generation_error"
	if ctx.Err() != nil {
		reason = "timeout"
	}
	metrics.GenerationFallbacks.WithLabelValues(reason).Inc()
	g.logger.WithError(err).Warn("primary generator failed, using template fallback", map[string]interface{}{
		"content_type": req.ContentType,
		"reason":       reason,
	})

	return g.fallback.Generate(ctx, req)
}
