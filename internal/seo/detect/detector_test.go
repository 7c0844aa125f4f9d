package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metadata-workers/internal/models"
)

// ==========================================================================
// DETECTOR TESTS
// ==========================================================================

func TestDetector_OverridesRequestedTypeOnStrongMatch(t *testing.T) {
	d := NewDetector()

	text := "Check the price before you buy. Free shipping and a two year warranty on every order."
	got := d.Detect(text, models.ContentTypeArticle)

	assert.Equal(t, models.ContentTypeProduct, got)
}

func TestDetector_KeepsRequestedTypeBelowThreshold(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name      string
		text      string
		requested string
	}{
		{
			name:      "no keywords at all",
			text:      "A quiet afternoon walk through the park.",
			requested: models.ContentTypeBlog,
		},
		{
			name:      "single keyword is not enough",
			text:      "The warranty covers parts only.",
			requested: models.ContentTypeService,
		},
		{
			name:      "empty text",
			text:      "",
			requested: models.ContentTypeVideo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.requested, d.Detect(tt.text, tt.requested))
		})
	}
}

func TestDetector_FirstCategoryWinsTies(t *testing.T) {
	d := NewDetector()

	// Two article keywords and two financial keywords. Article is listed
	// first, so it takes the tie.
	text := "Our research report covers the loan market and average interest rate trends."
	got := d.Detect(text, models.ContentTypeBlog)

	assert.Equal(t, models.ContentTypeArticle, got)
}

func TestDetector_ScoresDistinctKeywordsOnly(t *testing.T) {
	d := NewDetector()

	// "donate" repeated three times still counts once; a single keyword
	// stays below the threshold.
	text := "Donate today. Donate tomorrow. Donate whenever you can."
	assert.Equal(t, models.ContentTypeEmail, d.Detect(text, models.ContentTypeEmail))

	scores := d.Score(text)
	assert.Equal(t, 1, scores[models.ContentTypeCharitable])
}

func TestDetector_CaseInsensitive(t *testing.T) {
	d := NewDetector()

	text := "WATCH the new VIDEO on our CHANNEL and SUBSCRIBE."
	assert.Equal(t, models.ContentTypeVideo, d.Detect(text, models.ContentTypeArticle))
}

func TestDetector_SubstringMatching(t *testing.T) {
	d := NewDetector()

	// Keywords match as plain substrings, including inside larger words.
	scores := d.Score("Rewatching subscribers")
	assert.Equal(t, 2, scores[models.ContentTypeVideo]) // "watch", "subscribe"
}

func BenchmarkDetector_Detect(b *testing.B) {
	d := NewDetector()
	text := "Our research study and analysis report according to the latest survey findings and data shows strong results."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Detect(text, models.ContentTypeBlog)
	}
}
