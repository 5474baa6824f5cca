package overlay

import "github.com/charmbracelet/lipgloss"

// Ghost fade ramp. Concrete hexes because the fade blends in color space.
const (
	ghostFromHex = "#c0c0c0"
	ghostToHex   = "#303030"
)

// MinDrawerWidth is the minimum character width for a side drawer.
const MinDrawerWidth = 30

// MinDrawerHeight is the minimum line height for a top/bottom drawer.
const MinDrawerHeight = 8

// PanelBorder returns the panel's chrome style.
func PanelBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// LoadingStyle returns the style for the loading placeholder box.
func LoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}).
		Padding(1, 2)
}

// BackdropColor is the dimmed fill behind the panel.
func BackdropColor() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "250", Dark: "236"}
}
