package panel

// BeforeUpdate captures the pre-update content geometry when a following
// update may swap the loading placeholder for real content. At most one
// snapshot is outstanding; a new capture replaces a stale one.
//
// Call just before the host applies a re-render.
func (m *Machine) BeforeUpdate() {
	if m.surface == nil {
		return
	}
	if m.ctx.state != StateOpen && m.ctx.state != StateOpening {
		return
	}
	if _, ok := m.surface.LoadingRect(); !ok {
		return
	}
	before, ok := m.surface.ContentRect()
	if !ok {
		return
	}
	m.ctx.pendingFlip = &before
}

// AfterUpdate derives the implied remote event from the sampled
// confirmation flag, dispatches it, then runs the current state's update
// hook. Any geometry snapshot not consumed by this update is stale and
// dropped. Call after the host has applied a re-render.
func (m *Machine) AfterUpdate() []Effect {
	var effects []Effect

	if m.surface != nil {
		active := m.surface.ServerActive()
		prev := m.ctx.prevActive
		m.ctx.prevActive = active
		if active != prev {
			implied := EventServerRequestsClose
			if active {
				implied = EventServerRequestsOpen
			}
			m.log.Debug().
				Str("panel", m.id).
				Stringer("event", implied).
				Msg("implied remote event")
			effects = append(effects, m.Dispatch(implied)...)
		}
	}

	effects = append(effects, m.onUpdate()...)
	m.ctx.pendingFlip = nil
	return effects
}

// onUpdate runs per-state update logic. Only OpeningServerArrived consumes
// pending geometry: it hides the loading placeholder and requests the
// correction that makes the loading→content swap read as continuous.
func (m *Machine) onUpdate() []Effect {
	if m.ctx.state != StateOpeningServerArrived {
		return nil
	}
	if m.ctx.pendingFlip == nil {
		return nil
	}
	before := *m.ctx.pendingFlip
	m.ctx.pendingFlip = nil
	return []Effect{
		{Kind: EffectHideLoading},
		{Kind: EffectFlipCorrect, Before: before},
	}
}
