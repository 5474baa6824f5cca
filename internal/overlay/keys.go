package overlay

import "github.com/charmbracelet/bubbles/key"

// panelKeys holds key bindings handled by the overlay itself.
type panelKeys struct {
	Close key.Binding
}

// ShortHelp returns the overlay bindings for a help bar.
func (k panelKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp returns the overlay bindings grouped for expanded help.
func (k panelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close}}
}

// PanelKeyMap returns the overlay key bindings.
func PanelKeyMap() panelKeys {
	return panelKeys{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
	}
}
