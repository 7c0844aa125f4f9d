// Package templates holds the static metadata template library and the
// sampler that turns a bucket into interpolated copy.
package templates

import "metadata-workers/internal/models"

// Bucket is the full template set for one content type. Titles target
// ~50-60 characters, descriptions ~150-160, social copy ~100 — documented
// ranges only, never enforced.
type Bucket struct {
	Titles       []string
	Descriptions []string
	Social       []string
}

// Store is the read-only content-type → bucket table, loaded once at
// startup and shared across requests without locking.
type Store struct {
	buckets map[string]Bucket
}

func NewStore() *Store {
	return &Store{buckets: defaultBuckets}
}

// Bucket resolves a content type to its template bucket. Unknown types fall
// back to the article bucket.
func (s *Store) Bucket(contentType string) Bucket {
	if b, ok := s.buckets[contentType]; ok {
		return b
	}
	return s.buckets[models.ContentTypeArticle]
}

// ContentTypes lists every type with a dedicated bucket.
func (s *Store) ContentTypes() []string {
	types := make([]string, 0, len(s.buckets))
	for t := range s.buckets {
		types = append(types, t)
	}
	return types
}
