package scenario

import (
	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
)

// FlingDuration is the deceleration time, in milliseconds, the host uses to
// turn a fling velocity into a resting offset.
const FlingDuration = 250.0

// Host is an in-memory scroll container. It owns the viewport, forwards
// host events to the engine and applies the viewports the engine returns.
// Offsets are not clamped to the content size.
type Host struct {
	engine *engine.Engine
	vp     engine.Viewport
	axis   geom.Axis
}

// NewHost returns a host showing vp.
func NewHost(e *engine.Engine, vp engine.Viewport) *Host {
	return &Host{engine: e, vp: vp, axis: geom.NewAxis(e.Direction())}
}

// Viewport returns the current viewport.
func (h *Host) Viewport() engine.Viewport { return h.vp }

// Engine returns the driven engine.
func (h *Host) Engine() *engine.Engine { return h.engine }

// Offset returns the main-axis content offset.
func (h *Host) Offset() float64 { return h.axis.Main(h.vp.Offset) }

// Layout runs a layout pass.
func (h *Host) Layout() error {
	vp, err := h.engine.Layout(h.vp)
	h.vp = vp
	return err
}

// ScrollTo moves the main-axis offset to offset and lays out.
func (h *Host) ScrollTo(offset float64) error {
	h.vp.Offset = h.axis.WithMain(h.vp.Offset, offset)
	return h.Layout()
}

// ScrollBy moves the main-axis offset by delta and lays out.
func (h *Host) ScrollBy(delta float64) error {
	return h.ScrollTo(h.Offset() + delta)
}

// Fling ends a drag with velocity, in points per millisecond along the main
// axis. The resting offset is adjusted by the engine when paging.
func (h *Host) Fling(velocity float64) (page int, err error) {
	v := h.axis.WithMain(geom.Point{}, velocity)
	target := h.axis.WithMain(h.vp.Offset, h.Offset()+velocity*FlingDuration)
	page = h.engine.WillEndDragging(h.vp, v, &target)

	tracking := h.vp.Tracking
	h.vp.Tracking = false
	h.vp.Offset = target
	err = h.Layout()
	h.vp.Tracking = tracking
	return page, err
}

// ScrollToItem brings index into view at pos. Animated requests finish
// immediately and are followed by the end-of-animation callback. It reports
// false when nothing is visible yet.
func (h *Host) ScrollToItem(index int, pos engine.ScrollPosition, animated bool) (bool, error) {
	req, ok := h.engine.ScrollToItem(h.vp, index, pos, animated)
	if !ok {
		return false, nil
	}
	h.vp.Offset = req.Offset
	if err := h.Layout(); err != nil {
		return true, err
	}
	if req.Animated {
		h.vp = h.engine.DidEndScrollingAnimation(h.vp)
		return true, h.Layout()
	}
	return true, nil
}

// Resize changes the container size and lays out.
func (h *Host) Resize(size geom.Size) error {
	h.vp.Size = size
	return h.Layout()
}

// SetInsets changes the content insets.
func (h *Host) SetInsets(in geom.Insets) error {
	h.vp.Insets = in
	vp, err := h.engine.InsetsChanged(h.vp)
	h.vp = vp
	return err
}

// Invalidate relayouts visible items after their sizes changed.
func (h *Host) Invalidate() error {
	vp, err := h.engine.InvalidateLayout(h.vp)
	h.vp = vp
	return err
}

// Reload rebuilds the visible items from the delegate.
func (h *Host) Reload() error {
	return h.engine.Reload(h.vp)
}

// Select taps the point (x, y) given in viewport coordinates.
func (h *Host) Select(x, y float64) (int, bool) {
	return h.engine.Select(geom.Point{X: h.vp.Offset.X + x, Y: h.vp.Offset.Y + y})
}

// SetPaging toggles page-snap mode.
func (h *Host) SetPaging(enabled bool) error {
	vp, err := h.engine.SetPagingEnabled(h.vp, enabled)
	h.vp = vp
	return err
}

// Track sets whether the user's finger is down. Lifting it runs a layout
// pass so the deferred recenter happens.
func (h *Host) Track(down bool) error {
	h.vp.Tracking = down
	if down {
		return nil
	}
	return h.Layout()
}
