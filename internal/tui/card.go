package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
)

// Status and button labels.
const (
	statusConnected    = "Connected"
	statusDisconnected = "Not connected"
	labelConnect       = "Connect"
	labelDisconnect    = "Disconnect"
)

// renderButton renders a single action button with the given label.
func renderButton(label string) string {
	return buttonStyle.Render(label)
}

// renderCard renders the wallet card for a connection state: a status
// line, the address only when connected, and exactly one action button.
func renderCard(state connector.ConnectionState) string {
	var status string
	var label string

	if state.Connected {
		status = connectedStyle.Render("● " + statusConnected)
		label = labelDisconnect
	} else {
		status = disconnectedStyle.Render("○ " + statusDisconnected)
		label = labelConnect
	}

	lines := []string{status}
	if state.Connected && state.Address != "" {
		lines = append(lines, addressStyle.Render(state.Address))
	}
	lines = append(lines, "", renderButton(label))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
