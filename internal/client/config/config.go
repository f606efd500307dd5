package config

import "time"

// Config holds runtime settings for the BetHub admin client.
//
// Fields:
//   - APIBaseURL: base address of the backend REST API.
//   - ContentBaseURL: base address for uploaded assets (icons, banners).
//   - RequestTimeout: per-request timeout enforced by the gateway.
//   - CredentialsPath: path of the local credentials database.
type Config struct {
	APIBaseURL      string
	ContentBaseURL  string
	RequestTimeout  time.Duration
	CredentialsPath string
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.ContentBaseURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.CredentialsPath = "bethub-admin.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
