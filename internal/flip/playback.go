package flip

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning. Critically damped so the correction settles without
// overshoot; overshoot would re-introduce the jump the correction removes.
const (
	springFrequency = 7.0
	springDamping   = 1.0
)

// settleEpsilon bounds how far from identity a playback may be and still
// count as done. Well under half a cell once projected onto a box.
const settleEpsilon = 0.01

// Playback drives a Correction back to identity one frame at a time.
type Playback struct {
	spring harmonica.Spring
	corr   Correction

	sx, sxVel float64
	sy, syVel float64
	dx, dxVel float64
	dy, dyVel float64
}

// NewPlayback starts a playback at the inverted position: the content is
// rendered at the before-box geometry and springs toward its natural size.
func NewPlayback(corr Correction, fps int) *Playback {
	if fps <= 0 {
		fps = 30
	}
	return &Playback{
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		corr:   corr,
		sx:     corr.ScaleX,
		sy:     corr.ScaleY,
		dx:     corr.DX,
		dy:     corr.DY,
	}
}

// Step advances the transform one frame toward identity.
func (p *Playback) Step() {
	p.sx, p.sxVel = p.spring.Update(p.sx, p.sxVel, 1)
	p.sy, p.syVel = p.spring.Update(p.sy, p.syVel, 1)
	p.dx, p.dxVel = p.spring.Update(p.dx, p.dxVel, 0)
	p.dy, p.dyVel = p.spring.Update(p.dy, p.dyVel, 0)
}

// Done reports whether the transform has settled at identity.
func (p *Playback) Done() bool {
	for _, v := range []float64{p.sx - 1, p.sy - 1, p.sxVel, p.syVel} {
		if math.Abs(v) > settleEpsilon {
			return false
		}
	}
	for _, v := range []float64{p.dx, p.dy, p.dxVel, p.dyVel} {
		if math.Abs(v) > settleEpsilon*float64(max(p.corr.After.W, 1)) {
			return false
		}
	}
	return true
}

// Box returns the interpolated box and offset to render the content at for
// the current frame.
func (p *Playback) Box() (box Rect, offX, offY int) {
	box = Rect{
		W: int(math.Round(float64(p.corr.After.W) * p.sx)),
		H: int(math.Round(float64(p.corr.After.H) * p.sy)),
	}
	if box.W < 1 {
		box.W = 1
	}
	if box.H < 1 {
		box.H = 1
	}
	return box, int(math.Round(p.dx)), int(math.Round(p.dy))
}
