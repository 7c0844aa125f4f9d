// internal/models/generation.go
package models

// Tones supported by the transformer. Unknown tones pass strings through.
const (
	ToneProfessional  = "professional"
	ToneCasual        = "casual"
	ToneFriendly      = "friendly"
	ToneAuthoritative = "authoritative"
)

// Content types with template buckets. ContentTypeArticle doubles as the
// fallback bucket when a request names an unknown type.
const (
	ContentTypeArticle    = "article"
	ContentTypeBlog       = "blog"
	ContentTypeProduct    = "product"
	ContentTypeService    = "service"
	ContentTypeVideo      = "video"
	ContentTypeEmail      = "email"
	ContentTypeSocial     = "social"
	ContentTypeLanding    = "landing"
	ContentTypeCharitable = "charitable"
	ContentTypeFinancial  = "financial"
)

// GenerationRequest is the immutable input of a single generate call.
type GenerationRequest struct {
	Content        string `json:"content"`
	ContentType    string `json:"contentType"`
	TargetAudience string `json:"targetAudience,omitempty"`
	Tone           string `json:"tone,omitempty"`
}

// GeneratedCopy is the output of one generator run. DetectedContentType
// records the bucket actually used, which may differ from the requested type.
type GeneratedCopy struct {
	Titles              []string `json:"titles"`
	Descriptions        []string `json:"descriptions"`
	SocialCopy          []string `json:"socialCopy"`
	DetectedContentType string   `json:"detectedContentType,omitempty"`
}

// GenerationResult is the merged response object: generated copy plus
// compliance warnings. Constructed fresh per request; never persisted.
type GenerationResult struct {
	Titles       []string `json:"titles"`
	Descriptions []string `json:"descriptions"`
	SocialCopy   []string `json:"socialCopy"`
	Warnings     []string `json:"warnings"`
}
