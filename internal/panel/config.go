package panel

import (
	"fmt"
	"time"
)

// Direction is the edge a non-modal drawer slides in from.
type Direction string

const (
	SlideLeft   Direction = "left"
	SlideRight  Direction = "right"
	SlideTop    Direction = "top"
	SlideBottom Direction = "bottom"
)

// Config holds panel behavior settings. It is immutable after the machine
// is constructed.
type Config struct {
	// Duration is the enter/exit animation length.
	Duration time.Duration
	// EscapeCloses requests a close when escape is pressed.
	EscapeCloses bool
	// BackdropCloses requests a close on a click outside the panel.
	BackdropCloses bool
	// Modal renders the panel centered over a backdrop instead of as a
	// slide-over drawer.
	Modal bool
	// SlideFrom is the drawer's anchor edge. Only meaningful when Modal
	// is false.
	SlideFrom Direction
}

// DefaultConfig returns the default panel behavior: a 300ms right-hand
// drawer that closes on escape and backdrop clicks.
func DefaultConfig() Config {
	return Config{
		Duration:       300 * time.Millisecond,
		EscapeCloses:   true,
		BackdropCloses: true,
		SlideFrom:      SlideRight,
	}
}

// Validate checks that config values are usable.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("panel: duration must be positive, got %v", c.Duration)
	}
	if !c.Modal {
		switch c.SlideFrom {
		case SlideLeft, SlideRight, SlideTop, SlideBottom:
			// valid
		default:
			return fmt.Errorf("panel: slide direction must be left, right, top or bottom, got %q", c.SlideFrom)
		}
	}
	return nil
}
