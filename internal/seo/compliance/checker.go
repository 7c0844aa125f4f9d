package compliance

import (
	"fmt"
	"strings"
)

// Checker performs case-insensitive substring screening of raw text against
// its word lists. The lists are read-only after construction, so one Checker
// is safe for concurrent use.
type Checker struct {
	lists WordLists
}

func NewChecker(lists WordLists) *Checker {
	return &Checker{lists: lists}
}

// Check returns zero to three warning strings, always in red, yellow,
// regional order. Each warning names every matched phrase, comma-joined in
// list order. Matching has no word boundaries.
func (c *Checker) Check(text string) []string {
	lower := strings.ToLower(text)

	warnings := make([]string, 0, 3)
	if found := matchPhrases(lower, c.lists.Red); len(found) > 0 {
		warnings = append(warnings, fmt.Sprintf("Red words found: %s", strings.Join(found, ", ")))
	}
	if found := matchPhrases(lower, c.lists.Yellow); len(found) > 0 {
		warnings = append(warnings, fmt.Sprintf("Yellow words found: %s", strings.Join(found, ", ")))
	}
	if found := matchPhrases(lower, c.lists.Regional); len(found) > 0 {
		warnings = append(warnings, fmt.Sprintf("Region-specific terms found: %s", strings.Join(found, ", ")))
	}
	return warnings
}

func matchPhrases(lowerText string, phrases []string) []string {
	var found []string
	for _, phrase := range phrases {
		if strings.Contains(lowerText, strings.ToLower(phrase)) {
			found = append(found, phrase)
		}
	}
	return found
}
