// Package generator produces SEO metadata from raw content, either from the
// static template library or from an external model with a template
// fallback.
package generator

import (
	"context"

	"metadata-workers/internal/models"
)

// Generator is the capability-polymorphic generation contract. Both the
// template path and the model path satisfy it, so callers never branch on
// the backend.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedCopy, error)
}
