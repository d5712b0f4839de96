package scenario

import (
	"fmt"

	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

// CellType is the reuse identifier registered for scenario items.
const CellType = "item"

// Label is the view stored in scenario cells.
type Label struct {
	Text   string
	Reuses int
}

// PrepareForReuse clears the label before it is bound to another index.
func (l *Label) PrepareForReuse() {
	l.Text = ""
	l.Reuses++
}

// Event kinds recorded from delegate notifications.
const (
	EventDisplay  = "display"
	EventEnd      = "end"
	EventSelect   = "select"
	EventPage     = "page"
	EventScrollTo = "scroll_to"
)

// Event is a delegate notification.
type Event struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// Recorder is a delegate whose item lengths cycle through a fixed list. It
// records every notification until Drain is called.
type Recorder struct {
	dir    geom.Direction
	sizes  []float64
	cross  float64
	events []Event
}

func NewRecorder(dir geom.Direction, sizes []float64, cross float64) *Recorder {
	return &Recorder{dir: dir, sizes: sizes, cross: cross}
}

func (d *Recorder) SizeForItem(index int) geom.Size {
	n := len(d.sizes)
	l := d.sizes[((index%n)+n)%n]
	if d.dir == geom.Horizontal {
		return geom.Size{W: l, H: d.cross}
	}
	return geom.Size{W: d.cross, H: l}
}

func (d *Recorder) CellForItem(dq engine.Dequeuer, index int) (pool.Slot, error) {
	slot, err := dq.Dequeue(CellType, index)
	if err != nil {
		return pool.NoSlot, err
	}
	if l, ok := dq.Cell(slot).View.(*Label); ok {
		l.Text = fmt.Sprintf("#%d", index)
	}
	return slot, nil
}

func (d *Recorder) DidSelectItem(index int) { d.record(EventSelect, index) }
func (d *Recorder) DidChangePage(page int)  { d.record(EventPage, page) }

func (d *Recorder) WillDisplay(_ *pool.Cell, index int)      { d.record(EventDisplay, index) }
func (d *Recorder) DidEndDisplaying(_ *pool.Cell, index int) { d.record(EventEnd, index) }
func (d *Recorder) WillScrollTo(_ *pool.Cell, index int)     { d.record(EventScrollTo, index) }

func (d *Recorder) record(kind string, index int) {
	d.events = append(d.events, Event{Kind: kind, Index: index})
}

// Drain returns the recorded events and resets the log.
func (d *Recorder) Drain() []Event {
	ev := d.events
	d.events = nil
	return ev
}

// SetSizes replaces the size table. An empty list keeps the current one.
func (d *Recorder) SetSizes(sizes []float64) {
	if len(sizes) > 0 {
		d.sizes = sizes
	}
}
