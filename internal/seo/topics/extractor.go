// Package topics extracts ranked keyword topics from free text.
package topics

import (
	"regexp"
	"sort"
	"strings"
)

// MinTopics is the floor every extraction pads up to.
const MinTopics = 3

// fillerTopics pad short results. Order matters: padding is deterministic.
var fillerTopics = []string{"content", "strategies", "success", "information"}

var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "your": true,
	"have": true, "will": true, "been": true, "were": true, "they": true,
	"their": true, "there": true, "would": true, "could": true, "should": true,
	"about": true, "which": true, "when": true, "what": true, "where": true,
	"while": true, "these": true, "those": true, "then": true, "than": true,
	"them": true, "some": true, "such": true, "into": true, "over": true,
	"also": true, "more": true, "most": true, "other": true, "only": true,
	"just": true, "very": true, "like": true, "make": true, "made": true,
	"being": true, "because": true, "through": true, "after": true,
	"before": true, "between": true, "during": true, "each": true,
	"every": true, "here": true, "does": true, "doing": true, "must": true,
	"many": true, "much": true, "even": true, "well": true, "want": true,
	"needs": true, "need": true, "using": true, "used": true, "uses": true,
	"both": true, "same": true, "still": true, "part": true, "upon": true,
	"however": true, "therefore": true, "without": true,
	"within": true, "around": true, "against": true, "under": true,
	"above": true, "below": true, "down": true, "once": true, "again": true,
	"further": true, "until": true, "among": true, "along": true,
	"behind": true, "since": true, "though": true, "whether": true,
	"either": true, "neither": true, "itself": true, "yours": true,
	"ours": true, "theirs": true, "really": true, "things": true,
	"thing": true, "going": true, "gets": true, "take": true, "takes": true,
}

var (
	nonWordChars = regexp.MustCompile(`[^\w\s]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Extractor ranks tokens by frequency after stop-word removal.
type Extractor struct {
	stopWords map[string]bool
}

// NewExtractor returns an extractor with the default English stop-word set.
func NewExtractor() *Extractor {
	return &Extractor{stopWords: stopWords}
}

// Extract returns the top-count topics of text, padded to at least MinTopics
// entries. It never fails: empty or unusable input yields the filler topics.
func (e *Extractor) Extract(text string, count int) []string {
	if count < 1 {
		count = MinTopics
	}

	cleaned := strings.ToLower(text)
	cleaned = nonWordChars.ReplaceAllString(cleaned, "")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	var order []string
	counts := make(map[string]int)
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= 3 || e.stopWords[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > count {
		order = order[:count]
	}

	return pad(order)
}

// pad appends filler topics (skipping duplicates) until the result has at
// least MinTopics entries.
func pad(topicList []string) []string {
	if len(topicList) >= MinTopics {
		return topicList
	}

	present := make(map[string]bool, len(topicList))
	for _, t := range topicList {
		present[t] = true
	}

	for _, filler := range fillerTopics {
		if len(topicList) >= MinTopics {
			break
		}
		if present[filler] {
			continue
		}
		topicList = append(topicList, filler)
		present[filler] = true
	}

	return topicList
}

// DefaultTopics returns the fillers an empty extraction produces.
func DefaultTopics() []string {
	out := make([]string, MinTopics)
	copy(out, fillerTopics)
	return out
}
