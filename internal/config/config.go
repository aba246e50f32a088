// Package config provides configuration management for mnconnect.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Wallet  WalletConfig  `yaml:"wallet"`
	Bridge  BridgeConfig  `yaml:"bridge"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// WalletConfig selects which injected wallet capability to connect to.
type WalletConfig struct {
	// ID is the wallet identifier looked up in the capability registry,
	// the equivalent of the extension's entry in the browser's wallet
	// namespace.
	ID string `yaml:"id"`
}

// BridgeConfig defines how to reach a wallet daemon's RPC surface.
type BridgeConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Endpoint       string  `yaml:"endpoint"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	RatePerSecond  float64 `yaml:"rate_per_second"`
	Burst          int     `yaml:"burst"`
}

// UIConfig defines terminal UI settings.
type UIConfig struct {
	// Demo registers the in-process demo wallet so the UI has something
	// to connect to without a running wallet daemon.
	Demo bool `yaml:"demo"`

	// DemoMnemonic seeds the demo wallet's address derivation.
	DemoMnemonic string `yaml:"demo_mnemonic"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Path returns the config file path for a home directory.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Load reads the configuration from a file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config path is derived from the user's home flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a file, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
