package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bochaco/mn-wallet-connect/internal/tui"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// uiCmd runs the single-screen connection UI.
//
//nolint:gochecknoglobals // Cobra CLI pattern
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the wallet connection screen",
	Long: `UI opens a single screen with the connection status card and one
action button. Press c to connect, d to disconnect, q to quit.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
			return mnerr.WithSuggestion(mnerr.ErrNoTerminal,
				"run the ui command from an interactive terminal, or use 'mnconnect connect'")
		}

		program := tea.NewProgram(tui.New(newNegotiator()))
		if _, err := program.Run(); err != nil {
			return mnerr.Wrap(err, "running UI")
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra command registration
func init() {
	rootCmd.AddCommand(uiCmd)
}
