package panel

import "github.com/optimist-ui/optimist/internal/flip"

// Context is the single mutable record owned by the machine and shared by
// every transition. All persistent lifecycle data lives here; states
// themselves carry no data.
type Context struct {
	// state is the active lifecycle state. Never undefined once seeded.
	state State
	// initiator records who triggered the current closing sequence. Set by
	// transition entries, cleared on entering Open or Closed.
	initiator Initiator
	// cfg is immutable after construction.
	cfg Config
	// pendingFlip is the at-most-one outstanding pre-update geometry
	// snapshot. Consumed (and cleared) by the one update that follows.
	pendingFlip *flip.Rect
	// prevActive is the remote confirmation flag as sampled on the
	// previous update tick, used to derive implied server events.
	prevActive bool
	// closeTransition marks that the panel is visually mid-close.
	closeTransition bool
}
