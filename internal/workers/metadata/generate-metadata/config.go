// internal/workers/metadata/generate-metadata/config.go
package generatemetadata

import (
	"time"

	"metadata-workers/internal/common/config"
)

type Config struct {
	Timeout    time.Duration
	MaxRetries int

	TitleCount       int
	DescriptionCount int
	SocialCount      int
	DefaultAudience  string
}

// LoadConfig maps the application config onto this worker's settings.
func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	timeout := time.Duration(wc.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Config{
		Timeout:          timeout,
		MaxRetries:       wc.MaxRetries,
		TitleCount:       cfg.SEO.TitleCount,
		DescriptionCount: cfg.SEO.DescriptionCount,
		SocialCount:      cfg.SEO.SocialCount,
		DefaultAudience:  cfg.SEO.DefaultAudience,
	}
}
