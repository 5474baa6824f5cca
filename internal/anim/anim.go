// Package anim provides frame ticks and single-fire duration timers for
// panel transitions. Timers follow the spinner tick loop pattern: each
// frame command schedules the next, and messages carry an id so frames
// from a stopped or re-armed timer are ignored.
package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the frame rate for panel animations.
const DefaultFPS = 30

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg is one animation frame for the timer identified by ID.
type FrameMsg struct {
	ID  int
	Tag string
	Now time.Time
}

// TimerDoneMsg fires exactly once when a timer's duration elapses.
type TimerDoneMsg struct {
	ID  int
	Tag string
}

// Timer emits FrameMsgs at a fixed rate until its duration elapses, then a
// single TimerDoneMsg. Stopping a timer invalidates its in-flight frames.
type Timer struct {
	id       int
	tag      string
	duration time.Duration
	interval time.Duration
	elapsed  time.Duration
	running  bool
}

// NewTimer creates a stopped timer; Start arms it.
func NewTimer(tag string, d time.Duration, fps int) Timer {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Timer{
		tag:      tag,
		duration: d,
		interval: time.Second / time.Duration(fps),
	}
}

// Start arms the timer and returns the first tick command. The first frame
// arrives one interval later, which doubles as the frame-boundary deferral
// before any measurement-dependent work.
func (t Timer) Start() (Timer, tea.Cmd) {
	t.id = nextID()
	t.elapsed = 0
	t.running = true
	return t, t.tick()
}

// Stop disarms the timer. Frames already in flight carry the old id and
// are dropped by Update.
func (t Timer) Stop() Timer {
	t.running = false
	t.id = 0
	return t
}

// Running reports whether the timer is armed.
func (t Timer) Running() bool { return t.running }

// ID returns the timer's current frame identity.
func (t Timer) ID() int { return t.id }

// Interval returns the time between frames.
func (t Timer) Interval() time.Duration { return t.interval }

// Progress reports completion in [0, 1].
func (t Timer) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

func (t Timer) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag, Now: now}
	})
}

// Update consumes frame messages addressed to this timer and schedules the
// next frame, or the completion message when the duration has elapsed.
func (t Timer) Update(msg tea.Msg) (Timer, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || !t.running || frame.ID != t.id {
		return t, nil
	}
	t.elapsed += t.interval
	if t.elapsed >= t.duration {
		t.running = false
		id, tag := t.id, t.tag
		return t, func() tea.Msg {
			return TimerDoneMsg{ID: id, Tag: tag}
		}
	}
	return t, t.tick()
}

// NextFrame defers a message by one frame so the host has committed a
// layout before the follow-up runs.
func NextFrame(fn func() tea.Msg) tea.Cmd {
	return tea.Tick(time.Second/DefaultFPS, func(time.Time) tea.Msg {
		return fn()
	})
}
