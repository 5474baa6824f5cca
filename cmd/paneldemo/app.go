package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/optimist-ui/optimist/internal/overlay"
	"github.com/optimist-ui/optimist/internal/panel"
)

// demoContent is the "confirmed" panel body the fake remote delivers.
var demoContent = strings.Join([]string{
	"Order #4821",
	"",
	"  3 × widget         12.00",
	"  1 × flange          4.50",
	"  ──────────────────────── ",
	"  total              16.50",
	"",
	"[Enter] Checkout",
}, "\n")

// app is the demo host: it embeds the panel overlay and plays the remote
// process, confirming each optimistic change after a fixed latency.
type app struct {
	overlay  overlay.Model
	latency  time.Duration
	log      zerolog.Logger
	width    int
	height   int
	focusMsg string
}

func newApp(cfg panel.Config, latency time.Duration, log zerolog.Logger) (app, error) {
	ov, err := overlay.New(cfg,
		overlay.WithLogger(log),
		overlay.WithID("demo"),
		overlay.WithFocusTarget("checkout"),
	)
	if err != nil {
		return app{}, err
	}
	return app{overlay: ov, latency: latency, log: log}, nil
}

// Init returns the initial command.
func (a app) Init() tea.Cmd {
	return a.overlay.Init()
}

// confirm schedules the fake remote's answer to an optimistic change.
func (a app) confirm(active bool) tea.Cmd {
	content := ""
	if active {
		content = demoContent
	}
	return tea.Tick(a.latency, func(time.Time) tea.Msg {
		return overlay.ServerSnapshotMsg{Active: active, Content: content}
	})
}

// Update handles incoming messages.
func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "o":
			var cmd tea.Cmd
			a.overlay, cmd = a.overlay.Update(overlay.OpenRequestMsg{})
			return a, tea.Batch(cmd, a.remoteReaction())
		}

	case overlay.FocusRequestMsg:
		a.focusMsg = msg.Target
		return a, nil
	}

	before := a.overlay.State()
	var cmd tea.Cmd
	a.overlay, cmd = a.overlay.Update(msg)

	// The fake remote watches the machine like a real backend watches its
	// session channel: any new optimistic intent gets a delayed answer.
	if a.overlay.State() != before {
		return a, tea.Batch(cmd, a.remoteReaction())
	}
	return a, cmd
}

// remoteReaction answers the current optimistic state, if it awaits one.
func (a app) remoteReaction() tea.Cmd {
	switch a.overlay.State() {
	case panel.StateOpening:
		return a.confirm(true)
	case panel.StateClosingWaitingForServer, panel.StateClosingWaitingForServerToOpen:
		return a.confirm(false)
	default:
		return nil
	}
}

// View renders the base screen with the overlay on top when active.
func (a app) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}
	if a.overlay.Active() {
		return a.overlay.View()
	}

	var b strings.Builder
	b.WriteString("optimist panel demo\n\n")
	fmt.Fprintf(&b, "  state: %s\n", a.overlay.State())
	if a.focusMsg != "" {
		fmt.Fprintf(&b, "  focus: %s\n", a.focusMsg)
	}
	b.WriteString("\n  [o] open panel   [esc] close   [q] quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, b.String())
}
