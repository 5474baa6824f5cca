package panel

import "github.com/optimist-ui/optimist/internal/flip"

// Surface is the machine's window onto the host component. The machine
// never renders anything itself; it samples the surface for the remote
// confirmation flag and for geometry, and emits effects back to the host.
type Surface interface {
	// ServerActive reports whether the remote process currently wants the
	// panel open. Sampled once per update tick to derive implied events.
	ServerActive() bool
	// HasContent reports whether the main-content container exists.
	HasContent() bool
	// ContentRect measures the main-content box. ok is false when no
	// content is rendered.
	ContentRect() (r flip.Rect, ok bool)
	// LoadingRect measures the loading placeholder. ok is false when no
	// loading view is rendered.
	LoadingRect() (r flip.Rect, ok bool)
	// FocusTarget returns the focus destination for a newly opened panel,
	// or "" when none is configured.
	FocusTarget() string
}
