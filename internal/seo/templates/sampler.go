package templates

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Default sample sizes per output kind.
const (
	TitleSampleSize       = 5
	DescriptionSampleSize = 3
	SocialSampleSize      = 3
)

// Sampler draws a random fixed-size sample from a bucket and fills in the
// placeholder slots. Production uses a time-seeded source, so repeated calls
// with identical input yield different selections; tests pass a fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a sampler. Seed 0 means "seed from the clock".
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns k distinct templates drawn uniformly at random, preserving
// nothing of the source order. When the list holds fewer than k entries the
// whole list is returned shuffled.
func (s *Sampler) Sample(list []string, k int) []string {
	if k > len(list) {
		k = len(list)
	}
	perm := s.rng.Perm(len(list))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, list[idx])
	}
	return out
}

// Interpolate substitutes the topic and audience slots in each template.
// Topics are expected to carry at least three entries; shorter slices reuse
// the last topic. No escaping or length clamping is applied.
func (s *Sampler) Interpolate(selected []string, topics []string, audience string) []string {
	if audience == "" {
		audience = "professionals"
	}
	main := topicAt(topics, 0)
	replacer := strings.NewReplacer(
		"{Topic}", capitalize(main),
		"{topic}", main,
		"{topic2}", topicAt(topics, 1),
		"{topic3}", topicAt(topics, 2),
		"{audience}", audience,
	)

	out := make([]string, 0, len(selected))
	for _, tmpl := range selected {
		out = append(out, replacer.Replace(tmpl))
	}
	return out
}

func topicAt(topics []string, i int) string {
	if len(topics) == 0 {
		return "content"
	}
	if i >= len(topics) {
		i = len(topics) - 1
	}
	return topics[i]
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
