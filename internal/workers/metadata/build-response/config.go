// internal/workers/metadata/build-response/config.go
package buildresponse

import (
	"time"

	"metadata-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	Version string
}

// LoadConfig maps the application config onto this worker's settings.
func LoadConfig(cfg *config.Config) *Config {
	wc := cfg.Workers[TaskType]
	timeout := time.Duration(wc.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	version := cfg.App.Version
	if version == "" {
		version = "1.0.0"
	}

	return &Config{
		Timeout: timeout,
		Version: version,
	}
}
