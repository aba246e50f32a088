package config

import (
	"os"
	"path/filepath"
)

// DefaultWalletID is the wallet identifier used when none is configured.
// It matches the registry entry the bridge and demo providers register
// under.
const DefaultWalletID = "mnwallet"

// DefaultBridgeEndpoint is the default wallet daemon RPC endpoint.
const DefaultBridgeEndpoint = "http://127.0.0.1:9480/rpc"

// DefaultDemoMnemonic seeds the demo wallet. It is a well-known test
// vector, never used for real funds.
const DefaultDemoMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// DefaultHome returns the default home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mnconnect"
	}
	return filepath.Join(home, ".mnconnect")
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.mnconnect",
		Wallet: WalletConfig{
			ID: DefaultWalletID,
		},
		Bridge: BridgeConfig{
			Enabled:        false,
			Endpoint:       DefaultBridgeEndpoint,
			TimeoutSeconds: 0, // No timeout: enable() waits on user approval in the wallet UI
			RatePerSecond:  5,
			Burst:          10,
		},
		UI: UIConfig{
			Demo:         false,
			DemoMnemonic: DefaultDemoMnemonic,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.mnconnect/mnconnect.log",
		},
	}
}
