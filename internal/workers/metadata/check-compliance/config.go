// internal/workers/metadata/check-compliance/config.go
package checkcompliance

import (
	"time"

	"metadata-workers/internal/common/config"
)

type Config struct {
	Timeout    time.Duration
	MaxRetries int
	CacheTTL   time.Duration
}

// LoadConfig maps the application config onto this worker's settings.
func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	timeout := time.Duration(wc.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ttl := time.Duration(cfg.SEO.ComplianceCacheTTL) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &Config{
		Timeout:    timeout,
		MaxRetries: wc.MaxRetries,
		CacheTTL:   ttl,
	}
}
