package config

import (
	"flag"
	"os"
	"time"

	"github.com/bethub/admincli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-s string   base URL for uploaded assets (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path of the credentials database (default from Config)
//
// Only the flags listed above are parsed here; os.Args is filtered with
// flagx.FilterArgs so other components' flags are not disturbed.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.ContentBaseURL, "s", cfg.ContentBaseURL, "base URL for uploaded assets")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialsPath, "d", cfg.CredentialsPath, "path of the credentials database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
