package engine

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/observability"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

type relayoutEntry struct {
	slot  pool.Slot
	index int
	size  geom.Size
}

// InvalidateLayout re-queries the size of every visible item and repositions
// the window around an anchor so the item the user is looking at stays put.
//
// The anchor is the item whose center is nearest the viewport center, or the
// current page in paging mode. An anchor that fills the viewport, and any
// anchor in paging mode, is centered instead. Afterwards the viewport is
// re-tiled and recentered if needed.
func (e *Engine) InvalidateLayout(vp Viewport) (Viewport, error) {
	if len(e.window) == 0 {
		return vp, nil
	}
	if !e.enter("invalidate") {
		return vp, nil
	}
	defer e.leave()

	start := time.Now()
	vp = e.reconcileContentSize(vp)

	bounds := e.axisBounds(vp)
	offset := e.axisOffset(vp)
	currentCenter := offset + bounds/2

	var (
		entries  = make([]relayoutEntry, 0, len(e.window))
		anchor   = pool.NoSlot
		rel      float64
		closest  = math.MaxFloat64
		anchorIx = -1
	)
	for _, s := range e.window {
		idx, ok := e.pool.Index(s)
		if !ok {
			continue
		}
		size := e.delegate.SizeForItem(idx)
		if err := errors.ValidateItemSize(idx, size.W, size.H); err != nil {
			return vp, err
		}
		entries = append(entries, relayoutEntry{slot: s, index: idx, size: size})

		center := e.axis.Center(e.pool.Cell(s).Frame)
		dist := math.Abs(center - currentCenter)
		switch {
		case !e.paging && dist < closest:
			closest = dist
			anchor, anchorIx, rel = s, idx, center-currentCenter
		case e.paging && idx == e.currentPage:
			anchor, anchorIx, rel = s, idx, center-currentCenter
		}
	}

	slices.SortFunc(entries, func(a, b relayoutEntry) int { return a.index - b.index })

	pos := slices.IndexFunc(entries, func(en relayoutEntry) bool { return en.slot == anchor })
	if pos >= 0 {
		size := entries[pos].size
		length := e.axis.MainSize(size)

		var target float64
		if length >= bounds || e.paging {
			target = offset + (bounds-length)/2
		} else {
			target = currentCenter + rel - length/2
		}

		edge := target
		for i := pos - 1; i >= 0; i-- {
			edge -= e.axis.MainSize(entries[i].size) + e.spacing
			e.setFrame(vp, entries[i].slot, edge, entries[i].size)
		}
		e.setFrame(vp, anchor, target, size)
		edge = target + length
		for _, en := range entries[pos+1:] {
			edge += e.spacing
			e.setFrame(vp, en.slot, edge, en.size)
			edge += e.axis.MainSize(en.size)
		}
	} else if len(entries) > 0 {
		anchorIx = -1
		edge := e.axis.Origin(e.pool.Cell(entries[0].slot).Frame)
		for _, en := range entries {
			e.setFrame(vp, en.slot, edge, en.size)
			edge += e.axis.MainSize(en.size) + e.spacing
		}
	}

	e.window = e.window[:0]
	for _, en := range entries {
		e.window = append(e.window, en.slot)
	}

	if err := e.tile(vp); err != nil {
		return vp, fmt.Errorf("tile: %w", err)
	}
	vp = e.recenter(vp, false)

	e.logger.Debug("relayout", "anchor", anchorIx, "cells", len(entries))
	observability.Engine().OnRelayout(anchorIx, len(entries), time.Since(start))
	return vp, nil
}

// Reload discards every visible cell and materializes the window again,
// starting from the previous first index at the leading viewport edge. Use it
// after the underlying data changed.
func (e *Engine) Reload(vp Viewport) error {
	if len(e.window) == 0 {
		return nil
	}
	first, ok := e.pool.Index(e.window[0])
	if !ok {
		return nil
	}
	if !e.enter("reload") {
		return nil
	}
	defer e.leave()

	for _, s := range e.window {
		if idx, ok := e.pool.Index(s); ok {
			e.delegate.DidEndDisplaying(e.pool.Cell(s), idx)
		}
		e.pool.Release(s)
	}
	e.window = e.window[:0]

	minVisible := e.axis.Origin(vp.AdjustedBounds())
	if _, err := e.place(vp, after, minVisible-e.spacing, first); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if err := e.tile(vp); err != nil {
		return fmt.Errorf("tile: %w", err)
	}
	return nil
}
