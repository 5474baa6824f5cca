package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/optimist-ui/optimist/internal/flip"
	"github.com/optimist-ui/optimist/internal/panel"
)

// plainScript is the event sequence replayed in plain mode: a full
// optimistic open, a close racing a re-open request, and the resumed open
// settling after the remote confirms.
var plainScript = []panel.Event{
	panel.EventRequestOpen,
	panel.EventServerRequestsOpen,
	panel.EventTransitionEnd,
	panel.EventRequestClose,
	panel.EventRequestOpen,
	panel.EventServerRequestsClose,
	panel.EventTransitionEnd,
}

// plainSurface is a minimal machine surface for plain mode: the remote
// flag is driven by the script's server events directly, so sampling and
// geometry are inert.
type plainSurface struct{}

func (plainSurface) ServerActive() bool             { return false }
func (plainSurface) HasContent() bool               { return true }
func (plainSurface) ContentRect() (flip.Rect, bool) { return flip.Rect{}, false }
func (plainSurface) LoadingRect() (flip.Rect, bool) { return flip.Rect{}, false }
func (plainSurface) FocusTarget() string            { return "" }

// runPlain drives the machine through a scripted optimistic lifecycle and
// prints each event and the resulting state with its effects. Used when
// stdout is not a terminal.
func runPlain(cfg panel.Config, logger zerolog.Logger, w io.Writer) error {
	m := panel.New(plainSurface{}, cfg, panel.WithLogger(logger), panel.WithID("demo"))

	fmt.Fprintf(w, "seeded: %s\n", m.State())
	for _, ev := range plainScript {
		effects := m.Dispatch(ev)
		names := make([]string, len(effects))
		for i, eff := range effects {
			names[i] = eff.Kind.String()
		}
		fmt.Fprintf(w, "%s -> %s %v\n", ev, m.State(), names)
	}
	return nil
}
