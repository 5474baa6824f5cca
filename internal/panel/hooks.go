package panel

// enterArgs carries per-transition entry parameters.
type enterArgs struct {
	nonOptimistic bool
}

// enterFunc runs on entering a state. It returns the effects the host
// should execute. A returned error is logged by the machine and never
// aborts the swap.
type enterFunc func(m *Machine, args enterArgs) ([]Effect, error)

// exitFunc runs on leaving a state, under the same fail-soft contract.
type exitFunc func(m *Machine) error

// defaultEnterHooks builds the per-state entry behavior. States absent from
// the map have no entry side effects beyond the transition trace.
func defaultEnterHooks() map[State]enterFunc {
	return map[State]enterFunc{
		StateClosed:  enterClosed,
		StateOpening: enterOpening,
		StateOpen:    enterOpen,
		StateClosing: enterClosing,
	}
}

// defaultExitHooks builds the per-state exit behavior. No state currently
// needs exit work; the map exists so the fail-soft boundary is exercised
// uniformly.
func defaultExitHooks() map[State]exitFunc {
	return map[State]exitFunc{}
}

func enterClosed(m *Machine, _ enterArgs) ([]Effect, error) {
	m.ctx.initiator = InitiatorNone
	m.ctx.closeTransition = false
	return []Effect{{Kind: EffectHidePanel}}, nil
}

func enterOpening(m *Machine, _ enterArgs) ([]Effect, error) {
	// A resumed open (close confirmed while an open was pending) cancels
	// the visual close.
	m.ctx.closeTransition = false
	effects := []Effect{
		{Kind: EffectShowLoading},
		{Kind: EffectShowPanel},
	}
	if m.surface != nil && m.surface.HasContent() {
		effects = append(effects, Effect{Kind: EffectArmTransitionEnd})
	}
	return effects, nil
}

func enterOpen(m *Machine, args enterArgs) ([]Effect, error) {
	m.ctx.initiator = InitiatorNone
	var effects []Effect
	if args.nonOptimistic {
		// Remote confirmed before any local open request; no enter
		// animation ran, so show the panel directly.
		effects = append(effects, Effect{Kind: EffectShowPanel})
	}
	if m.surface != nil {
		if target := m.surface.FocusTarget(); target != "" {
			effects = append(effects, Effect{Kind: EffectFocusFirst, Target: target})
		}
	}
	return effects, nil
}

func enterClosing(m *Machine, _ enterArgs) ([]Effect, error) {
	m.ctx.closeTransition = true
	return []Effect{
		{Kind: EffectDisarmTransitionEnd},
		{Kind: EffectSetupGhost},
		{Kind: EffectHidePanel},
	}, nil
}
