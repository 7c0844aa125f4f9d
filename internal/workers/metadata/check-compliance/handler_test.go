// internal/workers/metadata/check-compliance/handler_test.go
package checkcompliance

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metadata-workers/internal/common/database"
	apperrors "metadata-workers/internal/common/errors"
	"metadata-workers/internal/common/logger"
	"metadata-workers/internal/seo/compliance"
)

func newTestHandler(t *testing.T, redisClient *database.RedisClient) *Handler {
	t.Helper()
	cfg := &Config{
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
	}
	checker := compliance.NewChecker(compliance.DefaultWordLists())
	return NewHandler(cfg, checker, redisClient, logger.NewTestLogger(t))
}

func newMiniredisClient(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

// ==========================================================================
// EXECUTE TESTS
// ==========================================================================

func TestExecute_CleanContentPasses(t *testing.T) {
	h := newTestHandler(t, nil)

	output := h.Execute(context.Background(), &Input{Content: "A quiet planning workshop for teams."})

	assert.True(t, output.Passed)
	assert.Empty(t, output.Warnings)
	assert.False(t, output.Cached)
}

func TestExecute_FlagsProhibitedContent(t *testing.T) {
	h := newTestHandler(t, nil)

	output := h.Execute(context.Background(), &Input{
		Content: "Our guaranteed plan offers the best colour options.",
	})

	assert.False(t, output.Passed)
	assert.Equal(t, []string{
		"Red words found: guaranteed",
		"Yellow words found: best",
		"Region-specific terms found: colour",
	}, output.Warnings)
}

func TestExecute_SecondIdenticalCheckHitsCache(t *testing.T) {
	client, mr := newMiniredisClient(t)
	h := newTestHandler(t, client)
	input := &Input{Content: "A miracle cure for everything."}

	first := h.Execute(context.Background(), input)
	assert.False(t, first.Cached)

	second := h.Execute(context.Background(), input)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Warnings, second.Warnings)

	// Exactly one cache entry keyed by the content hash.
	assert.Len(t, mr.Keys(), 1)
}

func TestExecute_CacheEntryExpires(t *testing.T) {
	client, mr := newMiniredisClient(t)
	h := newTestHandler(t, client)
	input := &Input{Content: "Nothing to flag here."}

	h.Execute(context.Background(), input)
	mr.FastForward(2 * time.Minute)

	again := h.Execute(context.Background(), input)
	assert.False(t, again.Cached)
}

func TestExecute_CorruptCacheEntryIsEvictedAndRecomputed(t *testing.T) {
	client, mr := newMiniredisClient(t)
	h := newTestHandler(t, client)
	input := &Input{Content: "Our guaranteed plan."}

	mr.Set(cacheKey(input.Content), "{not json")

	output := h.Execute(context.Background(), input)

	assert.False(t, output.Cached)
	assert.Equal(t, []string{"Red words found: guaranteed"}, output.Warnings)

	// The fresh result replaced the corrupt entry, so the next call hits it.
	again := h.Execute(context.Background(), input)
	assert.True(t, again.Cached)
}

func TestExecute_RedisDownDegradesToFreshCheck(t *testing.T) {
	client, mr := newMiniredisClient(t)
	h := newTestHandler(t, client)
	mr.Close()

	output := h.Execute(context.Background(), &Input{Content: "Our guaranteed offer."})

	assert.False(t, output.Passed)
	assert.False(t, output.Cached)
}

// ==========================================================================
// INPUT VALIDATION TESTS
// ==========================================================================

func TestParseInput_Validation(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name      string
		variables string
		wantCode  apperrors.ErrorCode
	}{
		{
			name:      "missing content",
			variables: `{"other": "value"}`,
			wantCode:  apperrors.ErrCodeValidationFailed,
		},
		{
			name:      "empty content",
			variables: `{"content": ""}`,
			wantCode:  apperrors.ErrCodeContentMissing,
		},
		{
			name:      "malformed json",
			variables: `{`,
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

func TestCacheKey_IsStablePerContent(t *testing.T) {
	assert.Equal(t, cacheKey("same text"), cacheKey("same text"))
	assert.NotEqual(t, cacheKey("same text"), cacheKey("other text"))
	assert.Contains(t, cacheKey("same text"), cacheKeyPrefix)
}
