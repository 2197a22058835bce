package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one routed view; it follows bubbletea's Init/Update/View.
type Screen interface {
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View() string
}

// NavigateMsg asks the model to switch to the screen at Address.
type NavigateMsg struct {
	Address string
}

// cmdNavigator records navigation requests made during one update and hands
// them back to bubbletea as a command. A later request supersedes an earlier
// one.
type cmdNavigator struct {
	pending string
	set     bool
}

func (n *cmdNavigator) Navigate(_ context.Context, address string) error {
	n.pending = address
	n.set = true
	return nil
}

func (n *cmdNavigator) flush() tea.Cmd {
	if !n.set {
		return nil
	}
	address := n.pending
	n.pending, n.set = "", false
	return func() tea.Msg { return NavigateMsg{Address: address} }
}
