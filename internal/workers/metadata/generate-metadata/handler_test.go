// internal/workers/metadata/generate-metadata/handler_test.go
package generatemetadata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "metadata-workers/internal/common/errors"
	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/models"
	"metadata-workers/internal/seo/generator"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := &Config{
		Timeout:          5 * time.Second,
		TitleCount:       5,
		DescriptionCount: 3,
		SocialCount:      3,
		DefaultAudience:  "professionals",
	}
	gen := generator.NewTemplateGenerator(generator.TemplateOptions{
		TitleCount:       cfg.TitleCount,
		DescriptionCount: cfg.DescriptionCount,
		SocialCount:      cfg.SocialCount,
		DefaultAudience:  cfg.DefaultAudience,
		Seed:             42,
	})
	return NewHandler(cfg, gen, logger.NewTestLogger(t))
}

// ==========================================================================
// EXECUTE TESTS
// ==========================================================================

func TestExecute_GeneratesFullMetadataSet(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Content:        "Marketing automation saves marketing teams time. Automation budgets keep growing.",
		ContentType:    models.ContentTypeArticle,
		TargetAudience: "managers",
		Tone:           models.ToneProfessional,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.RequestID)
	assert.Len(t, output.Titles, 5)
	assert.Len(t, output.Descriptions, 3)
	assert.Len(t, output.SocialCopy, 3)
}

func TestExecute_EchoesRequestedTypeAndReportsDetected(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Content:     "Check the price before you buy. Free shipping and warranty on every order.",
		ContentType: models.ContentTypeArticle,
	})

	require.NoError(t, err)
	// Detection switches the bucket but never rewrites the echoed type.
	assert.Equal(t, models.ContentTypeArticle, output.ContentType)
	assert.Equal(t, models.ContentTypeProduct, output.DetectedContentType)
}

func TestExecute_DefaultsContentTypeAndAudience(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Content: "Short note about planning."})

	require.NoError(t, err)
	assert.Equal(t, models.ContentTypeArticle, output.ContentType)
}

// ==========================================================================
// INPUT VALIDATION TESTS
// ==========================================================================

func TestParseInput_Validation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name      string
		variables string
		wantCode  apperrors.ErrorCode
	}{
		{
			name:      "missing content field",
			variables: `{"contentType": "article"}`,
			wantCode:  apperrors.ErrCodeValidationFailed,
		},
		{
			name:      "empty content",
			variables: `{"content": ""}`,
			wantCode:  apperrors.ErrCodeContentMissing,
		},
		{
			name:      "unsupported tone",
			variables: `{"content": "hello world", "tone": "sarcastic"}`,
			wantCode:  apperrors.ErrCodeValidationFailed,
		},
		{
			name:      "content has wrong type",
			variables: `{"content": 42}`,
			wantCode:  apperrors.ErrCodeValidationFailed,
		},
		{
			name:      "malformed json",
			variables: `{"content":`,
			wantCode:  apperrors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.parseInput(tt.variables)
			require.Error(t, err)
			stdErr, ok := err.(*apperrors.StandardError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

func TestParseInput_ValidVariables(t *testing.T) {
	h := newTestHandler(t)

	input, err := h.parseInput(`{"content": "hello world", "contentType": "blog", "tone": "casual"}`)

	require.NoError(t, err)
	assert.Equal(t, "hello world", input.Content)
	assert.Equal(t, models.ContentTypeBlog, input.ContentType)
	assert.Equal(t, models.ToneCasual, input.Tone)
}

func BenchmarkExecute(b *testing.B) {
	cfg := &Config{Timeout: 5 * time.Second, DefaultAudience: "professionals"}
	gen := generator.NewTemplateGenerator(generator.TemplateOptions{Seed: 42})
	h := NewHandler(cfg, gen, logger.NewNoOpLogger())
	input := &Input{
		Content:     "Marketing automation saves teams time every single week.",
		ContentType: models.ContentTypeArticle,
		Tone:        models.ToneProfessional,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Execute(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}
