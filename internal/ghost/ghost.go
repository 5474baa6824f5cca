// Package ghost makes a panel close feel instantaneous: the live content
// is replaced by an inert clone that animates out on its own while the
// container is immediately free to receive new content.
package ghost

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Snapshot is an inert deep copy of rendered content. Styling escapes are
// stripped at clone time so the ghost can never be mistaken for live
// output and never aliases the live render.
type Snapshot struct {
	lines  []string
	width  int
	height int
}

// Clone snapshots a rendered view.
func Clone(view string) Snapshot {
	plain := ansi.Strip(view)
	src := strings.Split(plain, "\n")
	lines := make([]string, len(src))
	copy(lines, src)
	return Snapshot{
		lines:  lines,
		width:  lipgloss.Width(plain),
		height: len(lines),
	}
}

// Empty reports whether the snapshot holds no visible content.
func (s Snapshot) Empty() bool {
	for _, line := range s.lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// Width returns the snapshot's cell width.
func (s Snapshot) Width() int { return s.width }

// Height returns the snapshot's line count.
func (s Snapshot) Height() int { return s.height }

// Fade animates a snapshot's foreground toward the backdrop color over a
// fixed duration.
type Fade struct {
	snap     Snapshot
	from     colorful.Color
	to       colorful.Color
	duration time.Duration
	elapsed  time.Duration
}

// NewFade builds a fade from one hex color to another. Unparseable colors
// fall back to a neutral gray ramp.
func NewFade(snap Snapshot, fromHex, toHex string, d time.Duration) *Fade {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		from = colorful.Color{R: 0.8, G: 0.8, B: 0.8}
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		to = colorful.Color{R: 0.2, G: 0.2, B: 0.2}
	}
	return &Fade{snap: snap, from: from, to: to, duration: d}
}

// Step advances the fade by one frame interval.
func (f *Fade) Step(delta time.Duration) {
	f.elapsed += delta
}

// Done reports whether the fade has run its full duration.
func (f *Fade) Done() bool {
	return f.elapsed >= f.duration
}

// Snapshot returns the cloned content being faded.
func (f *Fade) Snapshot() Snapshot { return f.snap }

func (f *Fade) progress() float64 {
	if f.duration <= 0 {
		return 1
	}
	t := float64(f.elapsed) / float64(f.duration)
	if t > 1 {
		return 1
	}
	return t
}

// View renders the ghost at its current fade level.
func (f *Fade) View() string {
	c := f.from.BlendLab(f.to, f.progress()).Clamped()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	out := make([]string, len(f.snap.lines))
	for i, line := range f.snap.lines {
		out[i] = style.Render(line)
	}
	return strings.Join(out, "\n")
}
