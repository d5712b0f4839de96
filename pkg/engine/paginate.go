package engine

import (
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/observability"
)

// HandlePagination decides which page a drag ending with velocity should
// settle on and writes the matching content offset to target when it is not
// nil.
//
// A positive main-axis velocity moves to the page after the current one, a
// negative velocity to the page before it. Zero velocity snaps back to the
// item nearest the viewport center. The page size is the main-axis length of
// that item plus spacing, so uniform item sizes are assumed.
//
// It reports false when no item is visible.
func (e *Engine) HandlePagination(vp Viewport, velocity geom.Point, target *geom.Point) (int, bool) {
	slot, index, ok := e.nearestCenter(vp)
	if !ok {
		return 0, false
	}
	frame := e.pool.Cell(slot).Frame

	var page int
	switch v := e.axis.Main(velocity); {
	case v > 0:
		page = e.currentPage + 1
	case v < 0:
		page = e.currentPage - 1
	default:
		page = index
	}

	pageSize := e.axis.Extent(frame) + e.spacing
	center := e.axis.Center(frame) + float64(page-index)*pageSize
	if target != nil {
		*target = e.axis.WithMain(vp.Offset, center-e.axisBounds(vp)/2)
	}
	return page, true
}

// WillEndDragging is called by the host when the user lifts their finger. In
// paging mode it adjusts target to the snapped page, updates the current
// page and notifies the delegate. It returns the current page.
func (e *Engine) WillEndDragging(vp Viewport, velocity geom.Point, target *geom.Point) int {
	if !e.paging {
		return e.currentPage
	}

	page := e.currentPage
	if p, ok := e.HandlePagination(vp, velocity, target); ok {
		page = p
	}

	if page != e.currentPage {
		from := e.currentPage
		e.currentPage = page
		e.logger.Debug("page changed", "from", from, "to", page)
		observability.Engine().OnPageChange(from, page)
		e.delegate.DidChangePage(page)
	}

	if slot, ok := e.SlotFor(page); ok {
		e.delegate.WillScrollTo(e.pool.Cell(slot), page)
	}
	return e.currentPage
}
