// Package flip implements first-last-invert-play geometry correction for
// content swaps: snapshot the content box before a swap, measure it after,
// and animate the inverse transform back to identity so a discontinuous
// swap reads as continuous motion.
package flip

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a measured content box in terminal cells.
type Rect struct {
	W, H int
}

// Measure returns the rendered extent of a view.
func Measure(view string) Rect {
	if view == "" {
		return Rect{}
	}
	return Rect{W: lipgloss.Width(view), H: lipgloss.Height(view)}
}

// Correction is the inverse transform mapping the after-box back onto the
// before-box: scale ratios plus a translation centering the before-box over
// the after-box.
type Correction struct {
	ScaleX, ScaleY float64
	DX, DY         float64
	Before, After  Rect
}

// Plan computes the correction for a before/after pair. ok is false when
// the boxes differ by less than one cell in both dimensions; there is no
// visible jump to correct.
func Plan(before, after Rect) (Correction, bool) {
	if math.Abs(float64(before.W-after.W)) < 1 && math.Abs(float64(before.H-after.H)) < 1 {
		return Correction{}, false
	}
	sx, sy := 1.0, 1.0
	if after.W != 0 {
		sx = float64(before.W) / float64(after.W)
	}
	if after.H != 0 {
		sy = float64(before.H) / float64(after.H)
	}
	return Correction{
		ScaleX: sx,
		ScaleY: sy,
		DX:     float64(before.W-after.W) / 2,
		DY:     float64(before.H-after.H) / 2,
		Before: before,
		After:  after,
	}, true
}
