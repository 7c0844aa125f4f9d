// Package compliance screens text against static prohibited, cautionary and
// region-specific phrase lists.
package compliance

// Default phrase lists. All matching is case-insensitive plain substring
// containment, so "art" matches inside "cart". Lists can be overridden per
// deployment through configuration.

// DefaultRedWords are prohibited claims that must never ship in marketing
// copy.
var DefaultRedWords = []string{
	"guaranteed",
	"miracle",
	"cure",
	"risk-free",
	"100% effective",
	"no side effects",
	"get rich",
	"instant results",
	"scientifically proven",
	"lose weight fast",
}

// DefaultYellowWords are cautionary superlatives that need legal review
// before publishing.
var DefaultYellowWords = []string{
	"best",
	"cheapest",
	"#1",
	"number one",
	"world-class",
	"unbeatable",
	"lowest price",
	"revolutionary",
	"breakthrough",
	"free money",
}

// DefaultRegionalTerms flag copy that likely needs localization for other
// audience regions.
var DefaultRegionalTerms = []string{
	"soccer",
	"colour",
	"zip code",
	"fall season",
	"thanksgiving",
	"college",
	"drugstore",
	"sidewalk",
	"apartment",
	"vacation",
}

// WordLists bundles the three phrase sets consumed by the Checker.
type WordLists struct {
	Red      []string
	Yellow   []string
	Regional []string
}

// DefaultWordLists returns the built-in phrase sets.
func DefaultWordLists() WordLists {
	return WordLists{
		Red:      DefaultRedWords,
		Yellow:   DefaultYellowWords,
		Regional: DefaultRegionalTerms,
	}
}

// Merge overlays any non-empty override list onto the defaults.
func (w WordLists) Merge(red, yellow, regional []string) WordLists {
	out := w
	if len(red) > 0 {
		out.Red = red
	}
	if len(yellow) > 0 {
		out.Yellow = yellow
	}
	if len(regional) > 0 {
		out.Regional = regional
	}
	return out
}
