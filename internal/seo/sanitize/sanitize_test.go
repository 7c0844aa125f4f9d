package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metadata-workers/internal/seo/topics"
)

func TestSanitizer_StripsTags(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "Marketing automation for teams",
			want: "Marketing automation for teams",
		},
		{
			name: "tags removed",
			in:   "<h1>Marketing</h1> <p>automation for <b>teams</b></p>",
			want: "Marketing automation for teams",
		},
		{
			name: "script dropped entirely",
			in:   "hello <script>alert('x')</script> world",
			want: "hello world",
		},
		{
			name: "entities decoded",
			in:   "research &amp; development",
			want: "research & development",
		},
		{
			name: "whitespace collapsed",
			in:   "growth\n\n  strategies\t here",
			want: "growth strategies here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.in))
		})
	}
}

func TestSanitizer_TopicsUnaffectedByMarkup(t *testing.T) {
	s := NewSanitizer()

	ex := topics.NewExtractor()
	plain := ex.Extract("growth marketing tactics for startups", 3)
	marked := ex.Extract(s.Clean("<b>growth</b> <em>marketing</em> tactics for <a href=\"#\">startups</a>"), 3)

	assert.Equal(t, plain, marked)
}
