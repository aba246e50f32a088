package cli

import (
	"github.com/spf13/cobra"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
	"github.com/bochaco/mn-wallet-connect/internal/metrics"
)

// statusCmd prints handshake metrics for this process.
//
//nolint:gochecknoglobals // Cobra CLI pattern
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wallet and handshake metrics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap := metrics.Global.Snapshot()

		cmd.Printf("Wallet:          %s\n", cfg.Wallet.ID)
		if cfg.Bridge.Enabled {
			cmd.Printf("Bridge:          %s\n", cfg.Bridge.Endpoint)
		}
		cmd.Printf("Attempts:        %d\n", snap.Attempts)
		cmd.Printf("Connected:       %d\n", snap.Connected)
		cmd.Printf("Wallet missing:  %d\n", snap.WalletMissing)
		cmd.Printf("Enable failed:   %d\n", snap.EnableFailed)
		cmd.Printf("Not enabled:     %d\n", snap.NotEnabled)
		cmd.Printf("State failed:    %d\n", snap.StateFailed)
		if snap.BridgeCalls > 0 {
			cmd.Printf("Bridge calls:    %d (%d errors)\n", snap.BridgeCalls, snap.BridgeErrors)
		}
		return nil
	},
}

// walletsCmd lists the wallet identifiers present in the registry.
//
//nolint:gochecknoglobals // Cobra CLI pattern
var walletsCmd = &cobra.Command{
	Use:   "wallets",
	Short: "List registered wallet capabilities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids := connector.Default.Wallets()
		if len(ids) == 0 {
			cmd.Println("No wallet capabilities registered.")
			cmd.Println("Run with --demo, or enable the bridge in the config.")
			return nil
		}

		for _, id := range ids {
			marker := " "
			if id == cfg.Wallet.ID {
				marker = "*"
			}
			cmd.Printf("%s %s\n", marker, id)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(walletsCmd)
}
