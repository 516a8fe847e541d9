// Package config holds the immutable startup configuration for the
// volkern-mcp server. The configuration is assembled once at process
// entry (defaults, then optional TOML file, then environment) and passed
// into the transport; nothing reads ambient state afterwards.
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultAPIURL is the production Volkern API endpoint.
	DefaultAPIURL = "https://api.volkern.app/api"

	// EnvAPIToken names the environment variable carrying the bearer token.
	// The token is never read from the configuration file.
	EnvAPIToken = "VOLKERN_API_TOKEN"

	// EnvAPIURL names the environment variable overriding the API base URL.
	EnvAPIURL = "VOLKERN_API_URL"
)

// Config holds volkern-mcp server configuration
type Config struct {
	// APIURL is the base URL of the Volkern REST API.
	// Default: "https://api.volkern.app/api"
	APIURL string `toml:"api_url,omitempty"`

	// APIToken is the bearer token attached to every outbound API call.
	// This field is required and comes exclusively from the
	// VOLKERN_API_TOKEN environment variable.
	APIToken string `toml:"-"`

	// Listen is the address for HTTP mode (e.g., ":9100").
	// Empty means stdio mode.
	Listen string `toml:"listen,omitempty"`

	// LogLevel controls log verbosity: debug, info, warn, or error.
	// Default: "info"
	LogLevel string `toml:"log_level,omitempty"`

	// LogFormat selects the log output format: logfmt or json.
	// Default: "logfmt"
	LogFormat string `toml:"log_format,omitempty"`

	// Insecure controls whether to skip TLS certificate verification.
	// Default: false (verify certificates)
	Insecure bool `toml:"insecure,omitempty"`
}

// Load builds the configuration from defaults, the optional TOML file at
// path (empty path skips the file), and environment variables. Environment
// values override file values; flag overrides are applied by the caller.
func Load(path string) (Config, error) {
	cfg := Config{
		APIURL:    DefaultAPIURL,
		LogLevel:  "info",
		LogFormat: "logfmt",
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		cfg.APIURL = apiURL
	}
	cfg.APIToken = os.Getenv(EnvAPIToken)

	return cfg, nil
}

// Validate checks that the configuration values are valid. A missing API
// token is the one fatal startup condition: the server must not come up
// without a credential.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("%s environment variable is required", EnvAPIToken)
	}

	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid API URL %q: must include scheme and host", c.APIURL)
	}

	return nil
}
