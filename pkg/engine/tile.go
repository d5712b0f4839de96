package engine

import (
	"slices"
	"time"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/observability"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

// epsilon absorbs rounding when comparing cell edges with the viewport.
const epsilon = 0.001

// maxStall bounds consecutive placements that do not move the window edge.
// Only zero-size items with zero spacing can trigger it.
const maxStall = 1024

type side int

const (
	after side = iota
	before
)

// tile fills the inset-adjusted viewport with cells and evicts the ones that
// left it. It loops until no rule applies.
func (e *Engine) tile(vp Viewport) error {
	start := time.Now()
	visible := vp.AdjustedBounds()
	minVisible := e.axis.Origin(visible)
	maxVisible := e.axis.MaxEdge(visible)
	added, removed := 0, 0

	if len(e.window) == 0 {
		if _, err := e.place(vp, after, minVisible-e.spacing, 0); err != nil {
			return err
		}
		added++
	}

	stall := 0
	for {
		last := e.window[len(e.window)-1]
		edge := e.axis.MaxEdge(e.pool.Cell(last).Frame)
		if edge+e.spacing >= maxVisible {
			break
		}
		idx, ok := e.pool.Index(last)
		if !ok {
			break
		}
		slot, err := e.place(vp, after, edge, idx+1)
		if err != nil {
			return err
		}
		added++
		if stall, err = e.checkProgress(stall, e.axis.MaxEdge(e.pool.Cell(slot).Frame) > edge, idx+1); err != nil {
			return err
		}
	}

	stall = 0
	for {
		first := e.window[0]
		edge := e.axis.Origin(e.pool.Cell(first).Frame)
		if edge-e.spacing <= minVisible {
			break
		}
		idx, ok := e.pool.Index(first)
		if !ok {
			break
		}
		slot, err := e.place(vp, before, edge, idx-1)
		if err != nil {
			return err
		}
		added++
		if stall, err = e.checkProgress(stall, e.axis.Origin(e.pool.Cell(slot).Frame) < edge, idx-1); err != nil {
			return err
		}
	}

	for len(e.window) > 0 {
		last := e.window[len(e.window)-1]
		if e.axis.Origin(e.pool.Cell(last).Frame) < maxVisible-epsilon {
			break
		}
		e.window = e.window[:len(e.window)-1]
		e.evict(last)
		removed++
	}

	for len(e.window) > 0 {
		first := e.window[0]
		if e.axis.MaxEdge(e.pool.Cell(first).Frame) > minVisible+epsilon {
			break
		}
		e.window = slices.Delete(e.window, 0, 1)
		e.evict(first)
		removed++
	}

	e.pool.ObserveVisible(len(e.window))
	observability.Engine().OnTile(len(e.window), added, removed, time.Since(start))
	return nil
}

func (e *Engine) checkProgress(stall int, moved bool, index int) (int, error) {
	if moved {
		return 0, nil
	}
	stall++
	if stall >= maxStall {
		return stall, errors.New(errors.ErrCodeInvalidSize,
			"tiling made no progress after %d zero-length items ending at index %d", stall, index)
	}
	return stall, nil
}

// place materializes index next to edge and adds it to the window. For after,
// the item starts one spacing past edge; for before, it ends one spacing
// short of edge.
func (e *Engine) place(vp Viewport, s side, edge float64, index int) (pool.Slot, error) {
	size := e.delegate.SizeForItem(index)
	if err := errors.ValidateItemSize(index, size.W, size.H); err != nil {
		return pool.NoSlot, err
	}

	slot, err := e.delegate.CellForItem(e, index)
	if err != nil {
		return pool.NoSlot, err
	}
	if !e.pool.Bind(slot, index) || slices.Contains(e.window, slot) {
		return pool.NoSlot, errors.New(errors.ErrCodeInternal,
			"delegate returned slot %d for index %d that was not dequeued", slot, index)
	}

	var main float64
	switch s {
	case after:
		main = edge + e.spacing
		e.window = append(e.window, slot)
	case before:
		main = edge - e.axis.MainSize(size) - e.spacing
		e.window = slices.Insert(e.window, 0, slot)
	}
	e.setFrame(vp, slot, main, size)

	e.delegate.WillDisplay(e.pool.Cell(slot), index)
	return slot, nil
}

// setFrame positions slot at main along the main axis, centered on the cross
// axis.
func (e *Engine) setFrame(vp Viewport, slot pool.Slot, main float64, size geom.Size) {
	cross := e.axis.CenteredCross(vp.Size, vp.Insets, size)
	e.pool.Cell(slot).Frame = e.axis.Place(main, cross, size)
}

// evict releases a slot already removed from the window and tells the
// delegate.
func (e *Engine) evict(slot pool.Slot) {
	idx, ok := e.pool.Index(slot)
	ended := *e.pool.Cell(slot)
	e.pool.Release(slot)
	if ok {
		e.delegate.DidEndDisplaying(&ended, idx)
	}
}
