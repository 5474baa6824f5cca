package panel

import (
	"fmt"

	"github.com/optimist-ui/optimist/internal/flip"
)

// EffectKind names a visual side effect the machine asks its host to
// perform. Effects are returned as data rather than executed inline, which
// keeps the transition table testable without a rendering layer. All
// effects are idempotent and fire-and-forget; executing one twice is safe.
type EffectKind int

const (
	// EffectShowLoading displays the loading placeholder.
	EffectShowLoading EffectKind = iota
	// EffectShowPanel makes the panel visible and starts its enter motion.
	EffectShowPanel
	// EffectHideLoading removes the loading placeholder.
	EffectHideLoading
	// EffectHidePanel begins hiding the panel. When a ghost fade is in
	// flight the host defers the actual hide to the fade's completion.
	EffectHidePanel
	// EffectFocusFirst asks the host to move focus to Target.
	EffectFocusFirst
	// EffectArmTransitionEnd starts the enter-animation completion timer.
	EffectArmTransitionEnd
	// EffectDisarmTransitionEnd cancels a pending completion timer.
	EffectDisarmTransitionEnd
	// EffectSetupGhost clones the live content into a fading ghost.
	EffectSetupGhost
	// EffectFlipCorrect runs the geometry correction from Before to the
	// content's current box.
	EffectFlipCorrect
)

var effectNames = map[EffectKind]string{
	EffectShowLoading:         "show-loading",
	EffectShowPanel:           "show-panel",
	EffectHideLoading:         "hide-loading",
	EffectHidePanel:           "hide-panel",
	EffectFocusFirst:          "focus-first",
	EffectArmTransitionEnd:    "arm-transition-end",
	EffectDisarmTransitionEnd: "disarm-transition-end",
	EffectSetupGhost:          "setup-ghost",
	EffectFlipCorrect:         "flip-correct",
}

// String returns the diagnostic name of the effect kind.
func (k EffectKind) String() string {
	if name, ok := effectNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown-effect(%d)", int(k))
}

// Effect is one side-effect request with its payload.
type Effect struct {
	Kind EffectKind
	// Target is the focus destination for EffectFocusFirst.
	Target string
	// Before is the pre-swap geometry for EffectFlipCorrect.
	Before flip.Rect
}
