package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/optimist-ui/optimist/internal/panel"
)

// borderChrome is the number of cells consumed by the panel border on each
// axis.
const borderChrome = 2

// bounds is a screen-space rectangle used for backdrop hit testing.
type bounds struct {
	x, y, w, h int
}

func (b bounds) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// View renders the overlay layer: a dimmed backdrop with the panel placed
// per its configuration. Returns "" when there is nothing to draw.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.Active() {
		return ""
	}

	pw, ph := m.panelSize()
	rw, rh := m.revealSize(pw, ph)

	style := PanelBorder().
		Width(rw - borderChrome).
		Height(rh - borderChrome).
		MaxWidth(rw).
		MaxHeight(rh)
	panelView := style.Render(m.renderBody())

	hPos, vPos := m.placement()
	return lipgloss.Place(m.width, m.height, hPos, vPos, panelView,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(BackdropColor()),
	)
}

// renderBody composes the panel interior: a still-fading ghost stacks above
// whatever the container currently holds, because the container is free for
// new content the moment the ghost detaches.
func (m Model) renderBody() string {
	var sections []string
	if gv, ok := m.ghosts.View(); ok {
		sections = append(sections, gv)
	}
	switch {
	case m.closing:
		// Container is free but shows nothing new until a fresh open.
	case m.flipPlay != nil && m.content != "":
		sections = append(sections, m.renderFlipBox())
	case m.loading:
		sections = append(sections, m.renderLoading())
	case m.visible && m.content != "":
		sections = append(sections, m.content)
	}
	if len(sections) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoading renders the loading placeholder box.
func (m Model) renderLoading() string {
	if !m.loading {
		return ""
	}
	return LoadingStyle().Render(m.spin.View() + " Loading…")
}

// renderFlipBox renders the confirmed content inside the interpolated
// correction box so the loading→content swap reads as continuous.
func (m Model) renderFlipBox() string {
	box, offX, offY := m.flipPlay.Box()
	style := lipgloss.NewStyle().
		Width(box.W).
		Height(box.H).
		MaxWidth(box.W).
		MaxHeight(box.H)
	if offX > 0 {
		style = style.MarginLeft(offX)
	}
	if offY > 0 {
		style = style.MarginTop(offY)
	}
	return style.Render(m.content)
}

// panelSize returns the panel's resting extent for the current terminal.
func (m Model) panelSize() (w, h int) {
	if m.cfg.Modal {
		w = min(m.width-4, 60)
		h = min(m.height-2, 16)
	} else {
		switch m.cfg.SlideFrom {
		case panel.SlideLeft, panel.SlideRight:
			w = max(m.width/3, MinDrawerWidth)
			h = m.height
		default: // top, bottom
			w = m.width
			h = max(m.height/3, MinDrawerHeight)
		}
	}
	w = max(min(w, m.width), borderChrome+1)
	h = max(min(h, m.height), borderChrome+1)
	return w, h
}

// revealSize shrinks the panel along its slide axis while the enter
// animation runs, the cell-grid rendition of a slide-in.
func (m Model) revealSize(w, h int) (int, int) {
	if !m.openTimer.Running() {
		return w, h
	}
	p := m.openTimer.Progress()
	if m.cfg.Modal {
		w = max(int(p*float64(w)), borderChrome+1)
		h = max(int(p*float64(h)), borderChrome+1)
		return w, h
	}
	switch m.cfg.SlideFrom {
	case panel.SlideLeft, panel.SlideRight:
		w = max(int(p*float64(w)), borderChrome+1)
	default:
		h = max(int(p*float64(h)), borderChrome+1)
	}
	return w, h
}

// placement maps the configuration to a screen anchor.
func (m Model) placement() (lipgloss.Position, lipgloss.Position) {
	if m.cfg.Modal {
		return lipgloss.Center, lipgloss.Center
	}
	switch m.cfg.SlideFrom {
	case panel.SlideLeft:
		return lipgloss.Left, lipgloss.Top
	case panel.SlideRight:
		return lipgloss.Right, lipgloss.Top
	case panel.SlideTop:
		return lipgloss.Left, lipgloss.Top
	default: // bottom
		return lipgloss.Left, lipgloss.Bottom
	}
}

// panelBounds returns the panel's resting screen rectangle for backdrop
// hit testing.
func (m Model) panelBounds() bounds {
	w, h := m.panelSize()
	var x, y int
	if m.cfg.Modal {
		x = (m.width - w) / 2
		y = (m.height - h) / 2
	} else {
		switch m.cfg.SlideFrom {
		case panel.SlideRight:
			x = m.width - w
		case panel.SlideBottom:
			y = m.height - h
		}
	}
	return bounds{x: x, y: y, w: w, h: h}
}
