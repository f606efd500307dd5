package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors Config for cleanenv. Unset variables stay zero and do
// not override earlier sources.
type envConfig struct {
	APIBaseURL      string        `env:"BETHUB_API_URL"`
	ContentBaseURL  string        `env:"BETHUB_CONTENT_URL"`
	RequestTimeout  time.Duration `env:"BETHUB_REQUEST_TIMEOUT"`
	CredentialsPath string        `env:"BETHUB_CREDENTIALS_PATH"`
}

// parseEnv overlays cfg with values from BETHUB_* environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.ContentBaseURL != "" {
		cfg.ContentBaseURL = ec.ContentBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.CredentialsPath != "" {
		cfg.CredentialsPath = ec.CredentialsPath
	}
}
