package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"metadata-workers/internal/models"
)

// ==========================================================================
// STORE TESTS
// ==========================================================================

func TestStore_AllContentTypesHaveFullBuckets(t *testing.T) {
	store := NewStore()

	for _, ct := range store.ContentTypes() {
		bucket := store.Bucket(ct)
		assert.GreaterOrEqual(t, len(bucket.Titles), TitleSampleSize, "titles for %s", ct)
		assert.GreaterOrEqual(t, len(bucket.Descriptions), DescriptionSampleSize, "descriptions for %s", ct)
		assert.GreaterOrEqual(t, len(bucket.Social), SocialSampleSize, "social for %s", ct)
	}
}

func TestStore_UnknownTypeFallsBackToArticle(t *testing.T) {
	store := NewStore()

	fallback := store.Bucket("podcast")
	article := store.Bucket(models.ContentTypeArticle)

	assert.Equal(t, article, fallback)
}

// ==========================================================================
// SAMPLER TESTS
// ==========================================================================

func TestSampler_FixedSeedIsReproducible(t *testing.T) {
	store := NewStore()
	bucket := store.Bucket(models.ContentTypeProduct)

	first := NewSampler(42).Sample(bucket.Titles, TitleSampleSize)
	second := NewSampler(42).Sample(bucket.Titles, TitleSampleSize)

	assert.Equal(t, first, second)
}

func TestSampler_SampleIsDistinctSubsetOfBucket(t *testing.T) {
	store := NewStore()
	bucket := store.Bucket(models.ContentTypeBlog)

	sample := NewSampler(7).Sample(bucket.Titles, TitleSampleSize)

	assert.Len(t, sample, TitleSampleSize)
	seen := make(map[string]bool)
	for _, s := range sample {
		assert.Contains(t, bucket.Titles, s)
		assert.False(t, seen[s], "duplicate sample entry: %s", s)
		seen[s] = true
	}
}

func TestSampler_ShortListReturnsEverything(t *testing.T) {
	sampler := NewSampler(1)

	sample := sampler.Sample([]string{"only {topic}"}, TitleSampleSize)

	assert.Len(t, sample, 1)
}

func TestSampler_InterpolationFillsEverySlot(t *testing.T) {
	store := NewStore()
	sampler := NewSampler(99)
	topics := []string{"finance", "budgeting", "forecasting"}

	for _, ct := range store.ContentTypes() {
		bucket := store.Bucket(ct)
		out := sampler.Interpolate(bucket.Titles, topics, "managers")
		out = append(out, sampler.Interpolate(bucket.Descriptions, topics, "managers")...)
		out = append(out, sampler.Interpolate(bucket.Social, topics, "managers")...)

		for _, s := range out {
			assert.NotContains(t, s, "{", "unresolved placeholder in %q", s)
			assert.NotContains(t, s, "}", "unresolved placeholder in %q", s)
		}
	}
}

func TestSampler_InterpolationKeepsValuesVerbatim(t *testing.T) {
	sampler := NewSampler(3)

	out := sampler.Interpolate(
		[]string{"{Topic} guide to {topic2} for {audience}"},
		[]string{"finance", "budgeting", "forecasting"},
		"managers",
	)

	assert.Equal(t, "Finance guide to budgeting for managers", out[0])
}

func TestSampler_BlankAudienceDefaultsToProfessionals(t *testing.T) {
	sampler := NewSampler(3)

	out := sampler.Interpolate([]string{"For {audience} only"}, []string{"growth"}, "")

	assert.Equal(t, "For professionals only", out[0])
}

func TestSampler_ShortTopicListReusesLastTopic(t *testing.T) {
	sampler := NewSampler(3)

	out := sampler.Interpolate([]string{"{topic} and {topic2} and {topic3}"}, []string{"growth"}, "teams")

	assert.Equal(t, "growth and growth and growth", out[0])
}

func TestSampler_HashtagSlotsInterpolate(t *testing.T) {
	sampler := NewSampler(3)

	out := sampler.Interpolate([]string{"Read this #{Topic} #{topic2}"}, []string{"finance", "budgeting"}, "teams")

	assert.True(t, strings.Contains(out[0], "#Finance"))
	assert.True(t, strings.Contains(out[0], "#budgeting"))
}

func BenchmarkSampler_SampleAndInterpolate(b *testing.B) {
	store := NewStore()
	bucket := store.Bucket(models.ContentTypeArticle)
	sampler := NewSampler(42)
	topics := []string{"marketing", "automation", "growth"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		selected := sampler.Sample(bucket.Titles, TitleSampleSize)
		sampler.Interpolate(selected, topics, "professionals")
	}
}
