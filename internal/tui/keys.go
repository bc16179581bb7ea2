package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pders01/pagesnap/internal/config"
)

// keyMap covers the keyboard; everything else is mouse input.
type keyMap struct {
	Quit  key.Binding
	Close key.Binding
}

func newKeyMap(cfg config.KeyConfig) keyMap {
	quit := cfg.Quit
	if quit == "" {
		quit = "q"
	}
	closeKey := cfg.Close
	if closeKey == "" {
		closeKey = "esc"
	}
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys(quit, "ctrl+c"),
			key.WithHelp(quit, "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys(closeKey),
			key.WithHelp(closeKey, "close"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
