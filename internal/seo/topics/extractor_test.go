// internal/seo/topics/extractor_test.go
package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Core Functionality Tests
// ==========================

func TestExtractor_Extract_RanksByFrequency(t *testing.T) {
	e := NewExtractor()

	text := "Marketing automation saves time. Marketing teams adopt automation " +
		"because marketing budgets reward efficiency."

	got := e.Extract(text, 3)

	assert.Equal(t, []string{"marketing", "automation", "saves"}, got)
}

func TestExtractor_Extract_TieBreakIsFirstSeen(t *testing.T) {
	e := NewExtractor()

	// alpha and omega both appear once; alpha appears first.
	got := e.Extract("alpha bravo omega", 2)

	assert.Equal(t, "alpha", got[0])
	assert.Equal(t, "bravo", got[1])
}

func TestExtractor_Extract_DropsShortTokensAndStopWords(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
	}{
		{"short tokens", "seo a an to api growth growth growth"},
		{"stop words", "this that with from growth growth growth about which"},
		{"punctuation noise", "growth, growth! growth? (seo) #api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text, 5)
			for _, topic := range got {
				assert.Greater(t, len(topic), 3, "topic %q too short", topic)
				assert.False(t, stopWords[topic], "topic %q is a stop word", topic)
			}
		})
	}
}

func TestExtractor_Extract_AlwaysAtLeastThree(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n  "},
		{"too short", "hi"},
		{"single usable token", "photosynthesis"},
		{"two usable tokens", "photosynthesis chlorophyll"},
		{"rich text", "content marketing strategies for sustainable growth in digital channels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text, 5)
			assert.GreaterOrEqual(t, len(got), MinTopics)
			for _, topic := range got {
				assert.NotEmpty(t, topic)
			}
		})
	}
}

func TestExtractor_Extract_EmptyInputYieldsDefaults(t *testing.T) {
	e := NewExtractor()

	for _, text := range []string{"", "  ", "ab", "a b"} {
		got := e.Extract(text, 5)
		assert.Equal(t, DefaultTopics(), got, "input %q", text)
	}
}

func TestExtractor_Extract_PaddingSkipsDuplicates(t *testing.T) {
	e := NewExtractor()

	// "content" is both extracted and the first filler; the pad must not
	// produce it twice.
	got := e.Extract("content", 5)

	seen := make(map[string]int)
	for _, topic := range got {
		seen[topic]++
	}
	for topic, n := range seen {
		assert.Equal(t, 1, n, "topic %q duplicated", topic)
	}
	assert.GreaterOrEqual(t, len(got), MinTopics)
}

func TestExtractor_Extract_CountClamping(t *testing.T) {
	e := NewExtractor()
	text := "alpha bravo charlie delta echo foxtrot golf hotel" // 8 usable tokens... but some <4 chars

	got := e.Extract(text, 2)
	// Requested 2 but result is still padded to the minimum.
	assert.GreaterOrEqual(t, len(got), MinTopics)

	got = e.Extract(text, 100)
	for _, topic := range got {
		assert.NotEmpty(t, topic)
	}
}

func TestExtractor_Extract_Lowercases(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("FINANCE Finance finance budgeting budgeting forecasting", 3)

	assert.Equal(t, "finance", got[0])
	for _, topic := range got {
		assert.Equal(t, strings.ToLower(topic), topic)
	}
}

// ==========================
// Benchmark Tests
// ==========================

func BenchmarkExtractor_Extract(b *testing.B) {
	e := NewExtractor()
	text := strings.Repeat("content marketing strategies drive measurable growth across channels ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Extract(text, 5)
	}
}
