// internal/workers/metadata/generate-metadata/models.go
package generatemetadata

type Input struct {
	Content        string `json:"content"`
	ContentType    string `json:"contentType"`
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
}

type Output struct {
	RequestID           string   `json:"requestId"`
	Titles              []string `json:"titles"`
	Descriptions        []string `json:"descriptions"`
	SocialCopy          []string `json:"socialCopy"`
	ContentType         string   `json:"contentType"`
	DetectedContentType string   `json:"detectedContentType"`
}
