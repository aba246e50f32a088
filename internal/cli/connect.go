package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
)

// connectCmd performs a one-shot handshake and prints the result.
//
//nolint:gochecknoglobals // Cobra CLI pattern
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Perform the wallet connection handshake",
	Long: `Connect locates the configured wallet capability and drives the
enable/verify/fetch-state handshake against it.

The enable step may wait on user approval inside the wallet's own UI;
interrupt with Ctrl-C to give up. Every failure collapses to the
disconnected state; details go to the log file only.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		negotiator := newNegotiator()
		state := negotiator.Connect(ctx)
		printState(cmd, state)
		return nil
	},
}

// disconnectCmd resets the connection view.
//
//nolint:gochecknoglobals // Cobra CLI pattern
var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Reset the local connection view",
	Long: `Disconnect resets the local view to the disconnected state. The
wallet's own session is not revoked; this never contacts the wallet.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		state := newNegotiator().Disconnect()
		printState(cmd, state)
		return nil
	},
}

// printState renders a connection state on one or two lines.
func printState(cmd *cobra.Command, state connector.ConnectionState) {
	if state.Connected {
		cmd.Printf("Status:  connected\n")
		cmd.Printf("Address: %s\n", state.Address)
		return
	}
	cmd.Printf("Status:  not connected\n")
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
}
