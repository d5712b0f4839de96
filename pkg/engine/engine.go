package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

// Viewport is a snapshot of the host scroll container.
//
// Offset is the content offset, Size the container bounds size, Insets the
// content insets, ContentSize the scrollable content size. Tracking is true
// while the user's finger is down; recentering is skipped then.
type Viewport struct {
	Offset      geom.Point
	Size        geom.Size
	Insets      geom.Insets
	ContentSize geom.Size
	Tracking    bool
}

// Bounds returns the visible rectangle in content coordinates.
func (v Viewport) Bounds() geom.Rect { return geom.NewRect(v.Offset, v.Size) }

// AdjustedBounds returns Bounds shrunk by the content insets.
func (v Viewport) AdjustedBounds() geom.Rect { return geom.Inset(v.Bounds(), v.Insets) }

// Engine virtualizes an infinite sequence of items. Create one with [New].
type Engine struct {
	delegate Delegate
	pool     *pool.Pool
	axis     geom.Axis
	spacing  float64
	extent   float64
	logger   *log.Logger

	// window holds the visible cells ordered by strictly consecutive index.
	window []pool.Slot

	paging            bool
	centeredInitially bool
	currentPage       int

	busy bool
}

// New creates an engine bound to d.
func New(d Delegate, opts ...Option) (*Engine, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "delegate is required")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errors.ValidateSpacing(cfg.spacing); err != nil {
		return nil, err
	}
	if err := errors.ValidateContentExtent(cfg.extent); err != nil {
		return nil, err
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	return &Engine{
		delegate: d,
		pool:     pool.New(),
		axis:     geom.NewAxis(cfg.direction),
		spacing:  cfg.spacing,
		extent:   cfg.extent,
		logger:   cfg.logger,
		paging:   cfg.paging,
	}, nil
}

// Register binds a cell factory to a reuse identifier. Layout passes do
// nothing until at least one type is registered.
func (e *Engine) Register(typeKey string, f pool.Factory) error {
	return e.pool.Register(typeKey, f)
}

// Dequeue returns a free cell of typeKey or creates one. It is meant to be
// called from [Delegate.CellForItem].
func (e *Engine) Dequeue(typeKey string, index int) (pool.Slot, error) {
	return e.pool.Acquire(typeKey, index)
}

// SetDelegate always fails: the delegate is bound by [New] and the engine
// relies on seeing every scroll event itself.
func (e *Engine) SetDelegate(Delegate) error {
	return errors.New(errors.ErrCodeDelegateForbidden,
		"delegate is bound at construction; forward scroll events to the engine instead")
}

// Cell returns the cell at slot.
func (e *Engine) Cell(slot pool.Slot) *pool.Cell { return e.pool.Cell(slot) }

// Pool exposes the cell pool.
func (e *Engine) Pool() *pool.Pool { return e.pool }

// Direction returns the scroll axis.
func (e *Engine) Direction() geom.Direction { return e.axis.Direction() }

// Spacing returns the inter-item gap.
func (e *Engine) Spacing() float64 { return e.spacing }

// ContentExtent returns the main-axis size of the content area.
func (e *Engine) ContentExtent() float64 { return e.extent }

// PagingEnabled reports whether page-snap mode is on.
func (e *Engine) PagingEnabled() bool { return e.paging }

// CurrentPage returns the index of the current page.
func (e *Engine) CurrentPage() int { return e.currentPage }

// VisibleSlots returns the visible cells in index order.
func (e *Engine) VisibleSlots() []pool.Slot {
	out := make([]pool.Slot, len(e.window))
	copy(out, e.window)
	return out
}

// VisibleIndices returns the indices of the visible cells in order.
func (e *Engine) VisibleIndices() []int {
	out := make([]int, 0, len(e.window))
	for _, s := range e.window {
		if i, ok := e.pool.Index(s); ok {
			out = append(out, i)
		}
	}
	return out
}

// IndexOf returns the index bound to a visible slot.
func (e *Engine) IndexOf(slot pool.Slot) (int, bool) { return e.pool.Index(slot) }

// SlotFor returns the visible cell showing index.
func (e *Engine) SlotFor(index int) (pool.Slot, bool) {
	if len(e.window) == 0 {
		return pool.NoSlot, false
	}
	first, ok := e.pool.Index(e.window[0])
	if !ok {
		return pool.NoSlot, false
	}
	i := index - first
	if i < 0 || i >= len(e.window) {
		return pool.NoSlot, false
	}
	slot := e.window[i]
	if got, ok := e.pool.Index(slot); !ok || got != index {
		return pool.NoSlot, false
	}
	return slot, true
}

// Layout runs one layout pass: reconcile the content size, recenter unless
// the user is dragging, then tile the viewport. On the first pass in paging
// mode it also centers index 0.
func (e *Engine) Layout(vp Viewport) (Viewport, error) {
	if !e.enter("layout") {
		return vp, nil
	}
	defer e.leave()
	return e.layout(vp)
}

func (e *Engine) layout(vp Viewport) (Viewport, error) {
	vp = e.reconcileContentSize(vp)
	if !vp.Tracking {
		vp = e.recenter(vp, false)
	}
	if !e.pool.HasRegistrations() {
		return vp, nil
	}
	if err := e.tile(vp); err != nil {
		return vp, fmt.Errorf("tile: %w", err)
	}

	if e.paging && !e.centeredInitially {
		e.centeredInitially = true
		vp = e.centerItem(vp, 0)
		if err := e.tile(vp); err != nil {
			return vp, fmt.Errorf("tile: %w", err)
		}
		e.currentPage = 0
	}
	return vp, nil
}

// InsetsChanged handles a change of content insets: it forces a recenter,
// resets initial paging centering and lays out again.
func (e *Engine) InsetsChanged(vp Viewport) (Viewport, error) {
	if !e.enter("insets") {
		return vp, nil
	}
	defer e.leave()
	e.centeredInitially = false
	vp = e.recenter(e.reconcileContentSize(vp), true)
	return e.layout(vp)
}

// SetPagingEnabled toggles page-snap mode and lays out again. Enabling it
// recenters on index 0 during that pass.
func (e *Engine) SetPagingEnabled(vp Viewport, enabled bool) (Viewport, error) {
	e.paging = enabled
	e.centeredInitially = false
	return e.Layout(vp)
}

// DidEndScrollingAnimation recenters once a programmatic scroll settles.
func (e *Engine) DidEndScrollingAnimation(vp Viewport) Viewport {
	return e.recenter(e.reconcileContentSize(vp), false)
}

// Select hit-tests a point in content coordinates and reports the index of
// the visible item under it.
func (e *Engine) Select(p geom.Point) (int, bool) {
	for _, s := range e.window {
		c := e.pool.Cell(s)
		if c == nil || !c.Frame.Contains(p) {
			continue
		}
		idx, ok := e.pool.Index(s)
		if !ok {
			continue
		}
		e.delegate.DidSelectItem(idx)
		return idx, true
	}
	return 0, false
}

// reconcileContentSize keeps the main extent and follows the viewport on the
// cross axis.
func (e *Engine) reconcileContentSize(vp Viewport) Viewport {
	main := e.axis.MainSize(vp.ContentSize)
	if main <= 0 {
		main = e.extent
	}
	var cs geom.Size
	if e.axis.IsHorizontal() {
		cs = geom.Size{W: main, H: vp.Size.H}
	} else {
		cs = geom.Size{W: vp.Size.W, H: main}
	}
	vp.ContentSize = cs
	return vp
}

// axisBounds is the inset-adjusted viewport length along the main axis.
func (e *Engine) axisBounds(vp Viewport) float64 {
	return e.axis.Extent(vp.AdjustedBounds())
}

func (e *Engine) axisOffset(vp Viewport) float64 {
	return e.axis.Main(vp.Offset)
}

func (e *Engine) centerItem(vp Viewport, index int) Viewport {
	slot, ok := e.SlotFor(index)
	if !ok {
		return vp
	}
	center := e.axis.Center(e.pool.Cell(slot).Frame)
	vp.Offset = e.axis.WithMain(vp.Offset, center-e.axisBounds(vp)/2)
	return vp
}

// enter marks the start of a pass. Calls made from delegate callbacks while a
// pass is running are dropped.
func (e *Engine) enter(op string) bool {
	if e.busy {
		e.logger.Debug("ignoring reentrant call", "op", op)
		return false
	}
	e.busy = true
	return true
}

func (e *Engine) leave() { e.busy = false }
