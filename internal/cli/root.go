// Package cli implements the mnconnect command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bochaco/mn-wallet-connect/internal/config"
	"github.com/bochaco/mn-wallet-connect/internal/connector"
	"github.com/bochaco/mn-wallet-connect/internal/connector/bridge"
	"github.com/bochaco/mn-wallet-connect/internal/connector/demowallet"
	"github.com/bochaco/mn-wallet-connect/internal/version"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

var (
	// Global flags
	homeDir  string
	walletID string
	verbose  bool
	demoMode bool

	// Global state initialized in PersistentPreRunE
	cfg    *config.Config
	logger *config.Logger
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mnconnect",
	Short: "Connect a dApp to an external wallet capability",
	Long: `mnconnect is a reference dApp showing how an application discovers,
enables, and queries an externally provided wallet capability.

It locates a wallet by identifier in the capability registry, drives the
enable/verify/fetch-state handshake, and renders the resulting connection
state. The wallet itself always lives outside this process.

Example:
  mnconnect ui --demo
  mnconnect connect --wallet mnwallet
  mnconnect status`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return mnerr.ExitCode(err)
}

// printError writes a structured error with its suggestion, if any.
func printError(w *os.File, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	var ce *mnerr.ConnectError
	if mnerr.As(err, &ce) && ce.Suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", ce.Suggestion)
	}
}

// initGlobals initializes global configuration and the logger.
func initGlobals() error {
	// Determine home directory
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	// Load or create config
	configPath := config.Path(home)
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		// Use defaults if config doesn't exist
		cfg = config.Defaults()
		cfg.Home = home
	}

	// Apply environment variable overrides
	config.ApplyEnvironment(cfg)

	// Override with command-line flags
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if walletID != "" {
		cfg.Wallet.ID = walletID
	}
	if demoMode {
		cfg.UI.Demo = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Initialize logger
	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		// Use null logger if we can't create the file
		logger = config.NullLogger()
	}

	return registerProviders()
}

// registerProviders populates the capability registry from the config,
// the way a browser populates its wallet namespace from installed
// extensions.
func registerProviders() error {
	if cfg.UI.Demo {
		if _, err := demowallet.Install(cfg.Wallet.ID, demowallet.Config{
			Mnemonic: cfg.UI.DemoMnemonic,
		}); err != nil {
			return err
		}
		logger.Debug("registered demo wallet as %q", cfg.Wallet.ID)
		return nil
	}

	if cfg.Bridge.Enabled {
		client := bridge.NewClient(
			config.SanitizeURL(cfg.Bridge.Endpoint),
			bridge.WithTimeout(time.Duration(cfg.Bridge.TimeoutSeconds)*time.Second),
			bridge.WithRateLimit(cfg.Bridge.RatePerSecond, cfg.Bridge.Burst),
		)
		connector.Register(cfg.Wallet.ID, bridge.NewProvider(client))
		logger.Debug("registered bridge wallet %q at %s", cfg.Wallet.ID, cfg.Bridge.Endpoint)
	}

	// Nothing registered is not an error: connect then resolves to the
	// disconnected state, exactly like a page with no extension installed.
	return nil
}

// newNegotiator builds a negotiator against the default registry.
func newNegotiator() *connector.Negotiator {
	return connector.NewNegotiator(&connector.Config{
		Locator:  connector.Default,
		WalletID: cfg.Wallet.ID,
		Logger:   logger,
	})
}

// cleanup closes global resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "home directory (default ~/.mnconnect)")
	rootCmd.PersistentFlags().StringVar(&walletID, "wallet", "", "wallet identifier to connect to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "register the in-process demo wallet")
}
