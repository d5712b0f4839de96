package engine

import (
	"math"

	"github.com/matzehuels/infiniscroll/pkg/observability"
)

// recenter moves the offset back to the middle of the content area once it
// drifts more than a quarter of the usable extent away, translating every
// visible cell by the same amount so nothing moves on screen.
func (e *Engine) recenter(vp Viewport, force bool) Viewport {
	start, end := e.axis.Insets(vp.Insets)
	effective := e.axis.MainSize(vp.ContentSize) - start - end
	center := start + (effective-e.axisBounds(vp))/2
	offset := e.axisOffset(vp)

	if !force && math.Abs(offset-center) <= effective/4 {
		return vp
	}

	delta := center - offset
	vp.Offset = e.axis.WithMain(vp.Offset, center)
	for _, s := range e.window {
		c := e.pool.Cell(s)
		c.Frame = e.axis.Translate(c.Frame, delta)
	}

	e.logger.Debug("recentered", "delta", delta, "forced", force, "visible", len(e.window))
	observability.Engine().OnRecenter(delta, force)
	return vp
}
