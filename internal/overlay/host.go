package overlay

import "github.com/optimist-ui/optimist/internal/flip"

// hostView mirrors the parts of the component the machine is allowed to
// observe. It is shared by pointer between the model and the machine and
// refreshed by syncHost before every machine interaction, which keeps the
// machine's view current across Bubble Tea's value-copied updates.
type hostView struct {
	active      bool
	body        string
	loading     string
	focusTarget string
}

func (h *hostView) ServerActive() bool { return h.active }

// HasContent reports the main-content container, which exists for the
// component's whole lifetime.
func (h *hostView) HasContent() bool { return true }

func (h *hostView) ContentRect() (flip.Rect, bool) {
	if h.body == "" {
		return flip.Rect{}, false
	}
	return flip.Measure(h.body), true
}

func (h *hostView) LoadingRect() (flip.Rect, bool) {
	if h.loading == "" {
		return flip.Rect{}, false
	}
	return flip.Measure(h.loading), true
}

func (h *hostView) FocusTarget() string { return h.focusTarget }
