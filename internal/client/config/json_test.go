package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bethub.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://json.bethub.io/api",
		"request_timeout": "15s",
		"credentials_path": "/tmp/creds.db"
	}`)
	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "https://json.bethub.io/api", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/creds.db", cfg.CredentialsPath)
	// absent JSON keys keep defaults
	require.Equal(t, "http://localhost:5000", cfg.ContentBaseURL)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "https://json.bethub.io/api"}`)
	resetArgs(t, "-c", path, "-a", "https://flag.bethub.io/api")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.bethub.io/api", cfg.APIBaseURL)
}

func TestLoadConfig_MissingJSONFilePanics(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	require.Panics(t, func() { LoadConfig() })
}

func TestLoadConfig_InvalidJSONPanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	resetArgs(t, "-c", path)

	require.Panics(t, func() { LoadConfig() })
}
