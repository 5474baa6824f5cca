package ghost

import (
	"time"

	"github.com/rs/zerolog"
)

// Source yields a candidate view for ghost capture. Sources are tried in
// order so callers can express a fallback chain of attachment points.
type Source func() (view string, ok bool)

// Coordinator owns at most one ghost per panel. Setting up a new ghost
// discards tracking of any previous one.
type Coordinator struct {
	fade     *Fade
	log      zerolog.Logger
	fromHex  string
	toHex    string
	duration time.Duration
}

// NewCoordinator builds a coordinator fading from one hex color to another
// over d.
func NewCoordinator(fromHex, toHex string, d time.Duration, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		log:      log,
		fromHex:  fromHex,
		toHex:    toHex,
		duration: d,
	}
}

// Setup clones the first usable source and starts its fade. Returns false
// when every source is empty; the caller then falls back to a plain
// duration-based hide instead of crashing the close.
func (c *Coordinator) Setup(sources ...Source) bool {
	c.fade = nil
	for _, src := range sources {
		view, ok := src()
		if !ok || view == "" {
			continue
		}
		snap := Clone(view)
		if snap.Empty() {
			continue
		}
		c.fade = NewFade(snap, c.fromHex, c.toHex, c.duration)
		return true
	}
	c.log.Error().Msg("ghost: no usable content source, skipping fade")
	return false
}

// Active reports whether a ghost is currently fading.
func (c *Coordinator) Active() bool { return c.fade != nil }

// Step advances the fade. Done ghosts are dropped.
func (c *Coordinator) Step(delta time.Duration) (done bool) {
	if c.fade == nil {
		return true
	}
	c.fade.Step(delta)
	if c.fade.Done() {
		c.fade = nil
		return true
	}
	return false
}

// Drop discards the current ghost, if any.
func (c *Coordinator) Drop() { c.fade = nil }

// View renders the current ghost. ok is false when no ghost is active.
func (c *Coordinator) View() (view string, ok bool) {
	if c.fade == nil {
		return "", false
	}
	return c.fade.View(), true
}
