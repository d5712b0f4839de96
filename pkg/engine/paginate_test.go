package engine

import (
	"slices"
	"testing"

	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/observability"
)

type pageRecorder struct {
	observability.NoopEngineHooks
	changes [][2]int
}

func (r *pageRecorder) OnPageChange(from, to int) { r.changes = append(r.changes, [2]int{from, to}) }

// pagedEngine returns a paging engine showing page 2 of 300-wide items in a
// 300-wide viewport.
func pagedEngine(t *testing.T) (*Engine, *recordingDelegate, Viewport) {
	t.Helper()
	d := &recordingDelegate{size: uniform(300, 100)}
	e := newTestEngine(t, d, WithDirection(geom.Horizontal), WithPaging(true))

	vp := horizontalViewport(0, 300, 100)
	vp.Tracking = false
	vp = mustLayout(t, e, vp)
	if e.CurrentPage() != 0 {
		t.Fatalf("CurrentPage() = %d, want 0", e.CurrentPage())
	}
	if got := frameOf(t, e, 0).MidX() - vp.Offset.X; got != 150 {
		t.Fatalf("page 0 relative center = %v, want 150", got)
	}

	req, ok := e.ScrollToItem(vp, 2, Center, true)
	if !ok {
		t.Fatal("ScrollToItem(2) ok = false")
	}
	vp.Offset = req.Offset
	vp = mustLayout(t, e, vp)
	if got, want := e.VisibleIndices(), []int{2}; !slices.Equal(got, want) {
		t.Fatalf("VisibleIndices() = %v, want %v", got, want)
	}
	return e, d, vp
}

func TestHandlePagination(t *testing.T) {
	tests := []struct {
		name     string
		velocity geom.Point
		page     int
		delta    float64
	}{
		{"forward", geom.Point{X: 1.5}, 3, 300},
		{"backward", geom.Point{X: -0.2}, 1, -300},
		{"at rest", geom.Point{}, 2, 0},
		{"cross-axis velocity only", geom.Point{Y: 4}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, vp := pagedEngine(t)
			center := frameOf(t, e, 2).MidX()

			var target geom.Point
			page, ok := e.HandlePagination(vp, tt.velocity, &target)
			if !ok {
				t.Fatal("HandlePagination() ok = false")
			}
			if page != tt.page {
				t.Errorf("page = %d, want %d", page, tt.page)
			}
			if want := center + tt.delta - 150; target.X != want {
				t.Errorf("target.X = %v, want %v", target.X, want)
			}
			if target.Y != vp.Offset.Y {
				t.Errorf("target.Y = %v, want %v", target.Y, vp.Offset.Y)
			}
		})
	}
}

func TestHandlePaginationNilTarget(t *testing.T) {
	e, _, vp := pagedEngine(t)
	if page, ok := e.HandlePagination(vp, geom.Point{X: 1}, nil); !ok || page != 3 {
		t.Errorf("HandlePagination() = %d, %v; want 3, true", page, ok)
	}
}

func TestHandlePaginationEmptyWindow(t *testing.T) {
	e := newTestEngine(t, &recordingDelegate{size: uniform(300, 100)}, WithPaging(true))
	target := geom.Point{X: 7, Y: 9}
	if _, ok := e.HandlePagination(verticalViewport(0, 100, 300), geom.Point{Y: 1}, &target); ok {
		t.Error("HandlePagination() ok = true with nothing visible")
	}
	if target != (geom.Point{X: 7, Y: 9}) {
		t.Errorf("target modified to %v", target)
	}
}

func TestWillEndDragging(t *testing.T) {
	rec := &pageRecorder{}
	observability.SetEngineHooks(rec)
	t.Cleanup(observability.Reset)

	e, d, vp := pagedEngine(t)
	var target geom.Point

	if page := e.WillEndDragging(vp, geom.Point{X: 2}, &target); page != 3 {
		t.Errorf("WillEndDragging() = %d, want 3", page)
	}
	if !slices.Equal(d.pages, []int{3}) {
		t.Errorf("pages = %v, want [3]", d.pages)
	}
	if len(d.scrolled) != 0 {
		t.Errorf("scrolled = %v, want none (page 3 not materialized)", d.scrolled)
	}

	if page := e.WillEndDragging(vp, geom.Point{}, &target); page != 2 {
		t.Errorf("WillEndDragging() = %d, want 2", page)
	}
	if page := e.WillEndDragging(vp, geom.Point{}, &target); page != 2 {
		t.Errorf("WillEndDragging() = %d, want 2", page)
	}
	if !slices.Equal(d.pages, []int{3, 2}) {
		t.Errorf("pages = %v, want [3 2]", d.pages)
	}
	if !slices.Equal(d.scrolled, []int{2, 2}) {
		t.Errorf("scrolled = %v, want [2 2]", d.scrolled)
	}
	if want := [][2]int{{2, 3}, {3, 2}}; !slices.Equal(rec.changes, want) {
		t.Errorf("OnPageChange = %v, want %v", rec.changes, want)
	}
}

func TestWillEndDraggingWithoutPaging(t *testing.T) {
	d := &recordingDelegate{size: uniform(100, 100)}
	e := newTestEngine(t, d, WithDirection(geom.Horizontal))
	vp := mustLayout(t, e, horizontalViewport(0, 300, 100))

	target := geom.Point{X: 123}
	if page := e.WillEndDragging(vp, geom.Point{X: 5}, &target); page != 0 {
		t.Errorf("WillEndDragging() = %d, want 0", page)
	}
	if target.X != 123 {
		t.Errorf("target.X = %v, want 123", target.X)
	}
	if len(d.pages) != 0 {
		t.Errorf("pages = %v, want none", d.pages)
	}
}

func TestSetPagingEnabledCentersFirstItem(t *testing.T) {
	d := &recordingDelegate{size: uniform(200, 100)}
	e := newTestEngine(t, d, WithDirection(geom.Horizontal))
	vp := horizontalViewport(0, 300, 100)
	vp.Tracking = false
	vp = mustLayout(t, e, vp)

	vp, err := e.SetPagingEnabled(vp, true)
	if err != nil {
		t.Fatalf("SetPagingEnabled() error: %v", err)
	}
	if !e.PagingEnabled() || e.CurrentPage() != 0 {
		t.Errorf("PagingEnabled() = %v, CurrentPage() = %d; want true, 0", e.PagingEnabled(), e.CurrentPage())
	}
	if got := frameOf(t, e, 0).MidX() - vp.Offset.X; got != 150 {
		t.Errorf("item 0 relative center = %v, want 150", got)
	}
	if got, want := e.VisibleIndices(), []int{-1, 0, 1}; !slices.Equal(got, want) {
		t.Errorf("VisibleIndices() = %v, want %v", got, want)
	}
	checkWindow(t, e, vp)
}

func TestCenteredScrollToVersusPageSnap(t *testing.T) {
	tests := []struct {
		name  string
		inset float64
	}{
		{"no insets", 0},
		{"leading inset", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, &recordingDelegate{size: uniform(100, 100)}, WithDirection(geom.Horizontal))
			vp := horizontalViewport(0, 300, 100)
			vp.Insets = geom.Insets{Left: tt.inset}
			vp = mustLayout(t, e, vp)

			var snap geom.Point
			page, ok := e.HandlePagination(vp, geom.Point{}, &snap)
			if !ok {
				t.Fatal("HandlePagination() ok = false")
			}
			slot, ok := e.SlotFor(page)
			if !ok {
				t.Fatalf("page %d is not visible", page)
			}
			centered := e.targetOffset(vp, e.Cell(slot).Frame, Center)

			if got := snap.X - centered.X; !near(got, tt.inset) {
				t.Errorf("snap - centered = %v, want %v", got, tt.inset)
			}
		})
	}
}
