package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/mrz1836/go-sanitize"
)

// Environment variable names.
const (
	EnvHome           = "MNCONNECT_HOME"
	EnvWalletID       = "MNCONNECT_WALLET"
	EnvBridgeEndpoint = "MNCONNECT_BRIDGE_ENDPOINT"
	EnvLogLevel       = "MNCONNECT_LOG_LEVEL"
	EnvDemo           = "MNCONNECT_DEMO"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvWalletID); v != "" {
		cfg.Wallet.ID = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvBridgeEndpoint); v != "" {
		cfg.Bridge.Enabled = true
		cfg.Bridge.Endpoint = SanitizeURL(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvDemo); v != "" {
		cfg.UI.Demo = parseBool(v)
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

// SanitizeURL cleans a URL string by removing invalid characters and
// trimming whitespace. Endpoint values often arrive with copy-paste
// artifacts.
func SanitizeURL(url string) string {
	return sanitize.URL(strings.TrimSpace(url))
}
