package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/optimist-ui/optimist/internal/anim"
	"github.com/optimist-ui/optimist/internal/flip"
	"github.com/optimist-ui/optimist/internal/panel"
)

// applyEffects executes the machine's side-effect requests. Effects are
// idempotent; running one twice is harmless. Nothing here returns an error
// to the machine: a failed effect degrades the visuals, never the state.
func (m *Model) applyEffects(effects []panel.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff.Kind {
		case panel.EffectShowPanel:
			m.visible = true
			m.closing = false

		case panel.EffectHidePanel:
			m.closing = true
			// With no ghost animating the hide commits immediately
			// (remote close straight out of Open).
			if !m.ghostTimer.Running() {
				m.visible = false
				m.loading = false
			}

		case panel.EffectShowLoading:
			m.loading = true
			cmds = append(cmds, m.spin.Tick)

		case panel.EffectHideLoading:
			m.loading = false

		case panel.EffectArmTransitionEnd:
			var cmd tea.Cmd
			m.openTimer = anim.NewTimer(tagOpen, m.cfg.Duration, anim.DefaultFPS)
			m.openTimer, cmd = m.openTimer.Start()
			cmds = append(cmds, cmd)

		case panel.EffectDisarmTransitionEnd:
			m.openTimer = m.openTimer.Stop()

		case panel.EffectSetupGhost:
			cmds = append(cmds, m.setupGhost())

		case panel.EffectFocusFirst:
			target := eff.Target
			cmds = append(cmds, func() tea.Msg {
				return FocusRequestMsg{Target: target}
			})

		case panel.EffectFlipCorrect:
			m.startFlip(eff.Before)
			if m.flipPlay != nil {
				var cmd tea.Cmd
				m.flipTimer = anim.NewTimer(tagFlip, 2*m.cfg.Duration, anim.DefaultFPS)
				m.flipTimer, cmd = m.flipTimer.Start()
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds
}

// setupGhost clones the outgoing content and starts the fade. The fallback
// chain tries the confirmed content, then the whole body, then the loading
// box. When every source is empty the ghost is abandoned and the timer
// alone paces the hide at the configured duration.
func (m *Model) setupGhost() tea.Cmd {
	m.ghosts.Setup(
		func() (string, bool) { return m.content, m.content != "" },
		func() (string, bool) { body := m.renderBody(); return body, body != "" },
		func() (string, bool) { l := m.renderLoading(); return l, l != "" },
	)

	// The timer's first frame lands one interval out, deferring the fade
	// past the frame that swaps the clone in.
	var cmd tea.Cmd
	m.ghostTimer = anim.NewTimer(tagGhost, m.cfg.Duration, anim.DefaultFPS)
	m.ghostTimer, cmd = m.ghostTimer.Start()
	return cmd
}

// startFlip plans the correction from the pre-swap box to the content's
// current box. Sub-cell differences plan nothing and render untouched.
func (m *Model) startFlip(before flip.Rect) {
	after := flip.Measure(m.content)
	plan, ok := flip.Plan(before, after)
	if !ok {
		m.flipPlay = nil
		return
	}
	m.flipPlay = flip.NewPlayback(plan, anim.DefaultFPS)
}
