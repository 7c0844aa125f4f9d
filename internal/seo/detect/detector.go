// Package detect scores content against per-category keyword sets to pick a
// template bucket.
package detect

import (
	"strings"

	"metadata-workers/internal/models"
)

// MatchThreshold is the minimum distinct-keyword score before detection
// overrides the caller-supplied content type.
const MatchThreshold = 2

// category pairs a content type with the keywords that signal it. Order is
// fixed: ties go to the earlier entry.
type category struct {
	contentType string
	keywords    []string
}

var categories = []category{
	{models.ContentTypeArticle, []string{
		"research", "study", "report", "analysis", "according to", "findings",
		"survey", "data shows",
	}},
	{models.ContentTypeBlog, []string{
		"posted", "read more", "in my experience", "opinion", "thoughts",
		"last week", "comments",
	}},
	{models.ContentTypeProduct, []string{
		"price", "buy", "features", "shipping", "warranty", "in stock",
		"add to cart", "order now",
	}},
	{models.ContentTypeService, []string{
		"consultation", "appointment", "our team", "services", "booking",
		"quote", "we offer",
	}},
	{models.ContentTypeVideo, []string{
		"watch", "video", "episode", "subscribe", "channel", "tutorial",
		"playlist",
	}},
	{models.ContentTypeEmail, []string{
		"newsletter", "unsubscribe", "inbox", "open rate", "subject line",
		"mailing list",
	}},
	{models.ContentTypeSocial, []string{
		"hashtag", "followers", "share this", "retweet", "viral", "engagement",
		"tag a friend",
	}},
	{models.ContentTypeLanding, []string{
		"sign up", "free trial", "get started", "limited time", "claim your",
		"no credit card",
	}},
	{models.ContentTypeCharitable, []string{
		"donate", "donation", "charity", "volunteer", "nonprofit",
		"fundraising", "give back",
	}},
	{models.ContentTypeFinancial, []string{
		"investment", "portfolio", "interest rate", "loan", "credit",
		"savings", "retirement", "returns",
	}},
}

// Detector picks the best-matching content type for raw text.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the detected content type, or requestedType unchanged when
// no category reaches the threshold. The score counts distinct keywords
// appearing as substrings of the lower-cased text; no word boundaries.
func (d *Detector) Detect(text, requestedType string) string {
	lower := strings.ToLower(text)

	best := ""
	bestScore := 0
	for _, cat := range categories {
		score := 0
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = cat.contentType
			bestScore = score
		}
	}

	if bestScore < MatchThreshold {
		return requestedType
	}
	return best
}

// Score reports the per-category distinct-keyword counts, mostly for
// debugging and tests.
func (d *Detector) Score(text string) map[string]int {
	lower := strings.ToLower(text)
	scores := make(map[string]int, len(categories))
	for _, cat := range categories {
		n := 0
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		scores[cat.contentType] = n
	}
	return scores
}
