// Package tone rewrites interpolated copy to match a requested stylistic
// register.
package tone

import (
	"regexp"
	"strings"

	"metadata-workers/internal/models"
)

// rule is one search-and-replace step. Rules run strictly in slice order and
// each operates on the output of the previous one, so a later rule may
// re-match text a prior rule just produced. Order is load-bearing.
type rule struct {
	re          *regexp.Regexp
	replacement string
}

func literal(find, replace string) rule {
	return rule{re: regexp.MustCompile(regexp.QuoteMeta(find)), replacement: replace}
}

func pattern(expr, replace string) rule {
	return rule{re: regexp.MustCompile(expr), replacement: replace}
}

var emojiPattern = `[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2300}-\x{23FF}\x{2190}-\x{21FF}\x{FE0F}\x{200D}]`

var toneRules = map[string][]rule{
	models.ToneProfessional: {
		pattern(`!+`, "."),
		pattern(emojiPattern, ""),
		literal("Ultimate", "Definitive"),
		literal("Awesome", "Excellent"),
		literal("Hacks", "Techniques"),
		literal("hacks", "techniques"),
		literal("Hot Take", "Perspective"),
		literal("can't", "cannot"),
		literal("don't", "do not"),
		pattern(`\s{2,}`, " "),
	},
	models.ToneCasual: {
		literal("Professional", "Awesome"),
		literal("Definitive", "Ultimate"),
		literal("Comprehensive", "Complete"),
		literal("Discover", "Check out"),
		literal("utilize", "use"),
		literal("purchase", "grab"),
	},
	models.ToneFriendly: {
		literal("Discover", "Come explore"),
		literal("Learn", "Let's learn about"),
		literal("Purchase", "Treat yourself to"),
		literal("Contact us", "Say hello"),
		literal("clients", "friends"),
	},
	models.ToneAuthoritative: {
		literal("might", "will"),
		literal("could", "will"),
		literal("maybe", "certainly"),
		literal("We think", "We know"),
		literal("Tips", "Principles"),
		literal("tips", "principles"),
	},
}

var hashtagPattern = regexp.MustCompile(`#\w+`)
var hashtagSegment = regexp.MustCompile(`[A-Z]+[a-z0-9]*|[a-z0-9]+`)

// Transformer applies per-tone replacement chains after interpolation.
type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Apply runs the tone's ordered rule chain over every string. Unknown tones
// pass through unchanged.
func (t *Transformer) Apply(lines []string, tone string) []string {
	rules, ok := toneRules[tone]
	if !ok {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		for _, r := range rules {
			line = r.re.ReplaceAllString(line, r.replacement)
		}
		out[i] = strings.TrimSpace(line)
	}
	return out
}

// ApplySocial is Apply plus the hashtag-formatting pass used for social
// copy only.
func (t *Transformer) ApplySocial(lines []string, tone string) []string {
	out := t.Apply(lines, tone)
	for i, line := range out {
		out[i] = formatHashtags(line)
	}
	return out
}

// formatHashtags title-cases each hashtag, re-splitting mixed-case tags on
// capital-letter boundaries so "#contentStrategy" becomes "#ContentStrategy".
func formatHashtags(line string) string {
	return hashtagPattern.ReplaceAllStringFunc(line, func(tag string) string {
		segments := hashtagSegment.FindAllString(tag[1:], -1)
		var b strings.Builder
		b.WriteByte('#')
		for _, seg := range segments {
			b.WriteString(titleCase(seg))
		}
		return b.String()
	})
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
