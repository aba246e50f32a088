package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bochaco/mn-wallet-connect/internal/connector"
)

// connectResultMsg carries a resolved handshake back into the update loop.
type connectResultMsg struct {
	state connector.ConnectionState
}

type keyMap struct {
	Connect    key.Binding
	Disconnect key.Binding
	Quit       key.Binding
}

var keys = keyMap{ //nolint:gochecknoglobals // Key binding table, same pattern as other Bubble Tea apps
	Connect: key.NewBinding(
		key.WithKeys("c", "enter"),
		key.WithHelp("c", "connect"),
	),
	Disconnect: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "disconnect"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the view-state holder: it owns the single ConnectionState
// value and replaces it wholesale when a handshake resolves or the user
// disconnects. No intermediate state is observable mid-handshake.
type Model struct {
	negotiator *connector.Negotiator
	state      connector.ConnectionState
	pending    bool // a dispatched connect command has not resolved yet
	width      int
	quitting   bool
}

// New creates the UI model for a negotiator.
func New(negotiator *connector.Negotiator) Model {
	return Model{
		negotiator: negotiator,
		state:      connector.Disconnected(),
	}
}

// State returns the current connection state.
func (m Model) State() connector.ConnectionState {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case connectResultMsg:
		m.pending = false
		m.state = msg.state
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Connect):
			if m.state.Connected || m.pending {
				return m, nil
			}
			m.pending = true
			return m, connectCmd(m.negotiator)

		case key.Matches(msg, keys.Disconnect):
			if !m.state.Connected {
				return m, nil
			}
			m.state = m.negotiator.Disconnect()
			return m, nil
		}
	}

	return m, nil
}

// connectCmd runs the handshake off the update loop. The negotiator's
// failure boundary guarantees the returned message always carries a
// fully formed state.
func connectCmd(negotiator *connector.Negotiator) tea.Cmd {
	return func() tea.Msg {
		return connectResultMsg{state: negotiator.Connect(context.Background())}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("mn wallet connect"))
	b.WriteString("\n\n")
	b.WriteString(renderCard(m.state))
	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpView() string {
	bindings := []key.Binding{keys.Connect, keys.Disconnect, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, strings.Join(parts, "  "))
}
