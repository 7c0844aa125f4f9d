// Package sanitize strips markup from caller-supplied content before the
// generation pipeline sees it.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes all HTML from input text. The underlying policy is
// immutable after construction, so one Sanitizer serves all requests.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean strips every tag, decodes the entities the policy escapes, and
// collapses the leftover whitespace. Plain text passes through unchanged.
func (s *Sanitizer) Clean(text string) string {
	cleaned := html.UnescapeString(s.policy.Sanitize(text))
	return strings.Join(strings.Fields(cleaned), " ")
}
