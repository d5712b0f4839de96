package engine

import (
	"math"
	"strings"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

// ScrollPosition selects where a target item lands in the viewport. Only the
// flags for the scroll axis are consulted; combine one vertical and one
// horizontal flag to stay direction-agnostic.
type ScrollPosition uint

// Alignment flags.
const (
	Top ScrollPosition = 1 << iota
	CenteredVertically
	Bottom
	Left
	CenteredHorizontally
	Right
)

// Composite positions.
const (
	TopLeft      = Top | Left
	TopRight     = Top | Right
	BottomLeft   = Bottom | Left
	BottomRight  = Bottom | Right
	Center       = CenteredVertically | CenteredHorizontally
	TopCenter    = Top | CenteredHorizontally
	BottomCenter = Bottom | CenteredHorizontally
	LeftCenter   = CenteredVertically | Left
	RightCenter  = CenteredVertically | Right
)

// Has reports whether all flags in q are set in p.
func (p ScrollPosition) Has(q ScrollPosition) bool { return p&q == q }

var positionNames = map[string]ScrollPosition{
	"top":                   Top,
	"centered-vertically":   CenteredVertically,
	"bottom":                Bottom,
	"left":                  Left,
	"centered-horizontally": CenteredHorizontally,
	"right":                 Right,
	"top-left":              TopLeft,
	"top-right":             TopRight,
	"bottom-left":           BottomLeft,
	"bottom-right":          BottomRight,
	"center":                Center,
	"top-center":            TopCenter,
	"bottom-center":         BottomCenter,
	"left-center":           LeftCenter,
	"right-center":          RightCenter,
}

// ParseScrollPosition parses names such as "center", "top-left" or
// "left+bottom". The empty string means Center.
func ParseScrollPosition(s string) (ScrollPosition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Center, nil
	}
	var p ScrollPosition
	for _, part := range strings.Split(s, "+") {
		v, ok := positionNames[strings.TrimSpace(part)]
		if !ok {
			return 0, errors.New(errors.ErrCodeInvalidInput, "unknown scroll position %q", part)
		}
		p |= v
	}
	return p, nil
}

// ScrollRequest asks the host to move its content offset.
type ScrollRequest struct {
	Offset   geom.Point
	Animated bool
}

// ScrollToItem computes the offset that brings index into view at pos and
// makes it the current page. Items outside the window are located by summing
// sizes and spacing from the visible item nearest the viewport center, so
// the result matches where tiling will later place them.
//
// It reports false when nothing is visible yet.
func (e *Engine) ScrollToItem(vp Viewport, index int, pos ScrollPosition, animated bool) (ScrollRequest, bool) {
	if slot, ok := e.SlotFor(index); ok {
		e.currentPage = index
		return e.request(vp, e.pool.Cell(slot).Frame, pos, animated), true
	}

	ref, refIndex, ok := e.nearestCenter(vp)
	if !ok {
		return ScrollRequest{}, false
	}
	refFrame := e.pool.Cell(ref).Frame

	delta := index - refIndex
	if delta == 0 {
		return e.request(vp, refFrame, pos, animated), true
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	var total float64
	for i := refIndex + step; i != index; i += step {
		total += e.axis.MainSize(e.delegate.SizeForItem(i)) + e.spacing
	}
	total += e.spacing

	size := e.delegate.SizeForItem(index)
	var main float64
	if delta > 0 {
		main = e.axis.MaxEdge(refFrame) + total
	} else {
		main = e.axis.Origin(refFrame) - total - e.axis.MainSize(size)
	}
	frame := e.axis.Place(main, e.axis.CenteredCross(vp.Size, vp.Insets, size), size)

	e.currentPage = index
	return e.request(vp, frame, pos, animated), true
}

func (e *Engine) request(vp Viewport, frame geom.Rect, pos ScrollPosition, animated bool) ScrollRequest {
	return ScrollRequest{Offset: e.targetOffset(vp, frame, pos), Animated: animated}
}

// targetOffset returns the content offset that aligns frame inside the
// inset-adjusted viewport. The cross component is left unchanged.
//
// Centering subtracts the leading inset so the item lands in the middle of
// the adjusted bounds. HandlePagination centers on the raw offset instead
// (center - axisBounds/2); the two agree when the insets are zero.
func (e *Engine) targetOffset(vp Viewport, frame geom.Rect, pos ScrollPosition) geom.Point {
	adj := vp.AdjustedBounds()
	in := vp.Insets
	off := vp.Offset
	if e.axis.IsHorizontal() {
		switch {
		case pos.Has(Left):
			off.X = frame.MinX() - in.Left
		case pos.Has(CenteredHorizontally):
			off.X = frame.MidX() - in.Left - adj.W/2
		case pos.Has(Right):
			off.X = frame.MaxX() - adj.W - in.Left
		}
		return off
	}
	switch {
	case pos.Has(Top):
		off.Y = frame.MinY() - in.Top
	case pos.Has(CenteredVertically):
		off.Y = frame.MidY() - in.Top - adj.H/2
	case pos.Has(Bottom):
		off.Y = frame.MaxY() - adj.H - in.Top
	}
	return off
}

// nearestCenter returns the visible cell whose center is closest to the
// viewport center. Ties go to the lower index.
func (e *Engine) nearestCenter(vp Viewport) (slot pool.Slot, index int, ok bool) {
	currentCenter := e.axisOffset(vp) + e.axisBounds(vp)/2
	best := math.MaxFloat64
	for _, s := range e.window {
		idx, bound := e.pool.Index(s)
		if !bound {
			continue
		}
		d := math.Abs(e.axis.Center(e.pool.Cell(s).Frame) - currentCenter)
		if d < best {
			best, slot, index, ok = d, s, idx, true
		}
	}
	return slot, index, ok
}
