package overlay

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/optimist-ui/optimist/internal/anim"
	"github.com/optimist-ui/optimist/internal/flip"
	"github.com/optimist-ui/optimist/internal/ghost"
	"github.com/optimist-ui/optimist/internal/panel"
)

// Model is the Bubble Tea model for an optimistic panel. One Model owns one
// machine; no instance is reused across unrelated panels.
type Model struct {
	machine *panel.Machine
	host    *hostView
	ghosts  *ghost.Coordinator
	cfg     panel.Config
	keys    panelKeys
	spin    spinner.Model
	log     zerolog.Logger
	id      string

	width  int
	height int

	// Server-confirmed content and confirmation flag, updated only by
	// ServerSnapshotMsg.
	serverActive bool
	content      string
	focusTarget  string

	// Visual state driven by machine effects.
	visible bool
	loading bool
	closing bool

	openTimer  anim.Timer
	ghostTimer anim.Timer
	flipTimer  anim.Timer
	flipPlay   *flip.Playback
}

// Option configures a Model at construction.
type Option func(*Model)

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithID sets the panel's diagnostic identity.
func WithID(id string) Option {
	return func(m *Model) { m.id = id }
}

// WithFocusTarget sets the focus destination announced when the panel
// finishes opening.
func WithFocusTarget(target string) Option {
	return func(m *Model) { m.focusTarget = target }
}

// New validates cfg and builds the overlay seeded closed. An unusable
// config is fatal: the instance refuses to activate and no machine is
// constructed.
func New(cfg panel.Config, opts ...Option) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		host: &hostView{},
		cfg:  cfg,
		keys: PanelKeyMap(),
		spin: s,
		log:  zerolog.Nop(),
		id:   "panel",
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.host.focusTarget = m.focusTarget
	m.machine = panel.New(m.host, cfg, panel.WithLogger(m.log), panel.WithID(m.id))
	m.ghosts = ghost.NewCoordinator(ghostFromHex, ghostToHex, cfg.Duration, m.log)
	return m, nil
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the machine's current lifecycle state.
func (m Model) State() panel.State { return m.machine.State() }

// Visible reports whether the panel chrome is shown.
func (m Model) Visible() bool { return m.visible }

// Active reports whether the overlay has anything to draw: the panel
// itself or a ghost still fading out.
func (m Model) Active() bool { return m.visible || m.ghosts.Active() }

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) && m.cfg.EscapeCloses && m.visible {
			return m, tea.Batch(m.applyEffects(m.dispatch(panel.EventRequestClose))...)
		}
		return m, nil

	case tea.MouseMsg:
		if m.cfg.BackdropCloses && m.visible &&
			msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!m.panelBounds().contains(msg.X, msg.Y) {
			return m, tea.Batch(m.applyEffects(m.dispatch(panel.EventRequestClose))...)
		}
		return m, nil

	case OpenRequestMsg:
		return m, tea.Batch(m.applyEffects(m.dispatch(panel.EventRequestOpen))...)

	case CloseRequestMsg:
		return m, tea.Batch(m.applyEffects(m.dispatch(panel.EventRequestClose))...)

	case ServerSnapshotMsg:
		// The before/after bracket around applying the snapshot is what
		// lets the machine capture pre-swap geometry and derive the
		// implied server event from the confirmation flag's edge.
		m.syncHost()
		m.machine.BeforeUpdate()
		m.serverActive = msg.Active
		m.content = msg.Content
		m.syncHost()
		return m, tea.Batch(m.applyEffects(m.machine.AfterUpdate())...)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case anim.FrameMsg:
		return m.updateFrame(msg)

	case anim.TimerDoneMsg:
		return m.updateTimerDone(msg)
	}

	return m, nil
}

// updateFrame routes an animation frame to its timer and steps the
// animation it drives.
func (m Model) updateFrame(msg anim.FrameMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Tag {
	case tagOpen:
		m.openTimer, cmd = m.openTimer.Update(msg)

	case tagGhost:
		matched := msg.ID == m.ghostTimer.ID()
		m.ghostTimer, cmd = m.ghostTimer.Update(msg)
		if matched {
			m.ghosts.Step(m.ghostTimer.Interval())
		}

	case tagFlip:
		matched := msg.ID == m.flipTimer.ID()
		m.flipTimer, cmd = m.flipTimer.Update(msg)
		if matched && m.flipPlay != nil {
			m.flipPlay.Step()
			if m.flipPlay.Done() {
				m.flipPlay = nil
				m.flipTimer = m.flipTimer.Stop()
			}
		}
	}
	return m, cmd
}

// updateTimerDone handles timer completions: the open timer's completion is
// the transition-end signal; the ghost timer's completion commits the hide.
func (m Model) updateTimerDone(msg anim.TimerDoneMsg) (Model, tea.Cmd) {
	switch msg.Tag {
	case tagOpen:
		if msg.ID != m.openTimer.ID() {
			return m, nil
		}
		return m, tea.Batch(m.applyEffects(m.dispatch(panel.EventTransitionEnd))...)

	case tagGhost:
		if msg.ID != m.ghostTimer.ID() {
			return m, nil
		}
		m.ghosts.Drop()
		if m.closing {
			m.visible = false
			m.loading = false
		}

	case tagFlip:
		if msg.ID != m.flipTimer.ID() {
			return m, nil
		}
		// Duration cap: strip the correction even if the spring has not
		// fully settled.
		m.flipPlay = nil
	}
	return m, nil
}

// dispatch refreshes the machine's view of the component, then delivers
// the event.
func (m *Model) dispatch(e panel.Event) []panel.Effect {
	m.syncHost()
	return m.machine.Dispatch(e)
}

// syncHost mirrors current renders and flags into the shared host view.
func (m *Model) syncHost() {
	m.host.active = m.serverActive
	m.host.body = m.renderBody()
	m.host.loading = m.renderLoading()
	m.host.focusTarget = m.focusTarget
}
