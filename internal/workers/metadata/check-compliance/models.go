// internal/workers/metadata/check-compliance/models.go
package checkcompliance

type Input struct {
	Content string `json:"content"`
}

type Output struct {
	Warnings []string `json:"warnings"`
	Passed   bool     `json:"passed"`
	Cached   bool     `json:"cached"`
}
