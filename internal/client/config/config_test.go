package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"admincli"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	require.Equal(t, "http://localhost:5000", cfg.ContentBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "bethub-admin.db", cfg.CredentialsPath)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "https://api.bethub.io", "-t", "5")

	cfg := LoadConfig()
	require.Equal(t, "https://api.bethub.io", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// untouched fields keep defaults
	require.Equal(t, "bethub-admin.db", cfg.CredentialsPath)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("BETHUB_API_URL", "https://env.bethub.io")
	t.Setenv("BETHUB_REQUEST_TIMEOUT", "30s")

	cfg := LoadConfig()
	require.Equal(t, "https://env.bethub.io", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	resetArgs(t, "-a", "https://flag.bethub.io")
	t.Setenv("BETHUB_API_URL", "https://env.bethub.io")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.bethub.io", cfg.APIBaseURL)
}
