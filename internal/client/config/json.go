package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bethub/admincli/internal/flagx"
	"github.com/bethub/admincli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string
// like "10s" or as integer nanoseconds.
type JSONConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	ContentBaseURL  string         `json:"content_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	CredentialsPath string         `json:"credentials_path"`
}

// parseJSON overlays cfg with values from the file passed via -c/-config.
// When no file is given the function is a no-op. Read or unmarshal errors
// panic, since a config file that was explicitly requested but cannot be
// used should stop startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.ContentBaseURL != "" {
		cfg.ContentBaseURL = jc.ContentBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
}
