package engine_test

import (
	"fmt"

	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

type labels struct {
	engine.NopNotifications
}

func (labels) SizeForItem(int) geom.Size { return geom.Size{W: 100, H: 40} }

func (labels) CellForItem(d engine.Dequeuer, index int) (pool.Slot, error) {
	slot, err := d.Dequeue("label", index)
	if err != nil {
		return pool.NoSlot, err
	}
	*d.Cell(slot).View.(*string) = fmt.Sprintf("item %d", index)
	return slot, nil
}

func ExampleEngine_Layout() {
	e, _ := engine.New(labels{}, engine.WithDirection(geom.Horizontal), engine.WithSpacing(10))
	_ = e.Register("label", func() any { return new(string) })

	vp := engine.Viewport{Size: geom.Size{W: 320, H: 40}, Tracking: true}
	vp, _ = e.Layout(vp)

	for _, slot := range e.VisibleSlots() {
		c := e.Cell(slot)
		fmt.Println(*c.View.(*string), c.Frame)
	}
	fmt.Println("content:", vp.ContentSize)
	// Output:
	// item 0 (0,0 100x40)
	// item 1 (110,0 100x40)
	// item 2 (220,0 100x40)
	// content: {50000 40}
}

func ExampleEngine_ScrollToItem() {
	e, _ := engine.New(labels{}, engine.WithDirection(geom.Horizontal))
	_ = e.Register("label", func() any { return new(string) })

	vp, _ := e.Layout(engine.Viewport{Size: geom.Size{W: 300, H: 40}})
	fmt.Println("offset:", vp.Offset.X)

	req, _ := e.ScrollToItem(vp, 10, engine.Center, true)
	vp.Offset = req.Offset
	vp, _ = e.Layout(vp)

	fmt.Println("offset:", vp.Offset.X)
	fmt.Println("visible:", e.VisibleIndices())
	fmt.Println("page:", e.CurrentPage())
	// Output:
	// offset: 24850
	// offset: 25750
	// visible: [9 10 11]
	// page: 10
}
