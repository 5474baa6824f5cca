// Package panel implements the optimistic open/close lifecycle for UI
// panels: the panel reacts instantly to a local gesture while an
// authoritative, possibly-delayed confirmation arrives asynchronously from
// a remote process. The machine reconciles both sources of truth into one
// consistent state and emits visual-effect requests as data for the host
// to execute.
package panel

import "github.com/rs/zerolog"

// Machine owns the current state and is the exclusive owner of state
// swaps. Hook failures are captured and logged but never abort a swap:
// leaving the machine without a defined state would be worse than a
// partially-failed side effect.
type Machine struct {
	ctx     *Context
	surface Surface
	log     zerolog.Logger
	id      string
	enter   map[State]enterFunc
	exit    map[State]exitFunc
	seeded  bool
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Machine) { m.log = log }
}

// WithID sets the panel's diagnostic identity. The id is immutable for the
// machine's lifetime and used only in log records.
func WithID(id string) Option {
	return func(m *Machine) { m.id = id }
}

// New builds a machine bound to surface and seeds it into Closed. The seed
// runs through the same transition path as every later swap, so it appears
// in the diagnostic trace as none→closed.
func New(surface Surface, cfg Config, opts ...Option) *Machine {
	m := &Machine{
		ctx:     &Context{cfg: cfg},
		surface: surface,
		log:     zerolog.Nop(),
		id:      "panel",
		enter:   defaultEnterHooks(),
		exit:    defaultExitHooks(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.transitionTo(StateClosed, enterArgs{})
	return m
}

// State returns the active lifecycle state.
func (m *Machine) State() State { return m.ctx.state }

// Initiator returns who triggered the current closing sequence.
func (m *Machine) Initiator() Initiator { return m.ctx.initiator }

// Config returns the immutable panel configuration.
func (m *Machine) Config() Config { return m.ctx.cfg }

// CloseTransition reports whether the panel is visually mid-close.
func (m *Machine) CloseTransition() bool { return m.ctx.closeTransition }

// Dispatch delivers an event to the current state and returns the effects
// the host should execute. An event with no table entry is not an error: it
// is logged and ignored with the state unchanged, because the remote side
// may emit confirmations the local machine has already superseded.
func (m *Machine) Dispatch(e Event) []Effect {
	res, ok := step(m.ctx.state, e)
	if !ok {
		m.log.Warn().
			Str("panel", m.id).
			Stringer("state", m.ctx.state).
			Stringer("event", e).
			Msg("unhandled event")
		return nil
	}
	if res.initiator != InitiatorNone {
		m.ctx.initiator = res.initiator
	}
	return m.transitionTo(res.next, enterArgs{nonOptimistic: res.nonOptimistic})
}

// DispatchNamed parses an external event name and dispatches it. Unknown
// names are logged and ignored.
func (m *Machine) DispatchNamed(name string) []Effect {
	e, err := ParseEvent(name)
	if err != nil {
		m.log.Warn().Str("panel", m.id).Str("event", name).Msg("unknown event name")
		return nil
	}
	return m.Dispatch(e)
}

// transitionTo swaps the current state: exit hook, swap, enter hook, in
// that order. Hook errors are logged and the swap completes regardless.
// Auto-advance edges re-enter transitionTo, which is how multi-step
// transitions (Closing → ClosingWaitingForServer) happen.
func (m *Machine) transitionTo(next State, args enterArgs) []Effect {
	from := "none"
	if m.seeded {
		from = m.ctx.state.String()
		if exit, ok := m.exit[m.ctx.state]; ok {
			if err := exit(m); err != nil {
				m.log.Error().Err(err).
					Str("panel", m.id).
					Str("state", from).
					Msg("exit hook failed")
			}
		}
	}

	m.ctx.state = next
	m.seeded = true

	m.log.Debug().
		Str("panel", m.id).
		Str("from", from).
		Str("to", next.String()).
		Stringer("initiator", m.ctx.initiator).
		Msg("transition")

	var effects []Effect
	if enter, ok := m.enter[next]; ok {
		out, err := enter(m, args)
		if err != nil {
			m.log.Error().Err(err).
				Str("panel", m.id).
				Str("state", next.String()).
				Msg("enter hook failed")
		}
		effects = append(effects, out...)
	}

	if adv, ok := autoAdvance[next]; ok {
		effects = append(effects, m.transitionTo(adv, enterArgs{})...)
	}
	return effects
}
