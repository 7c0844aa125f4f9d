// internal/workers/metadata/build-response/models.go
package buildresponse

import "metadata-workers/internal/models"

// Input collects the variables the upstream generate-metadata and
// check-compliance tasks left on the process instance.
type Input struct {
	RequestID           string   `json:"requestId"`
	Titles              []string `json:"titles"`
	Descriptions        []string `json:"descriptions"`
	SocialCopy          []string `json:"socialCopy"`
	ContentType         string   `json:"contentType"`
	DetectedContentType string   `json:"detectedContentType"`
	Warnings            []string `json:"warnings"`
	Passed              bool     `json:"passed"`
}

type Output struct {
	Response ResponsePayload `json:"response"`
}

type ResponsePayload struct {
	RequestID string           `json:"requestId"`
	Status    string           `json:"status"` // "completed" or "completed_with_warnings"
	Data      ResponseData     `json:"data"`
	Metadata  ResponseMetadata `json:"metadata"`
}

// ResponseData is the merged generation result plus the content-type fields
// the response contract adds on top of it.
type ResponseData struct {
	models.GenerationResult

	ContentType         string `json:"contentType"`
	DetectedContentType string `json:"detectedContentType,omitempty"`
}

type ResponseMetadata struct {
	Timestamp string `json:"timestamp"` // ISO 8601
	Version   string `json:"version"`
}
