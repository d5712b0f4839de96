package scenario

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
)

// Trace is the recorded outcome of a scenario run.
type Trace struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Hash      string    `json:"hash"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"created_at"`
	Frames    []Frame   `json:"frames"`
	Stats     Stats     `json:"stats"`
}

// Frame is the state after one step. Step 0 is the initial layout.
type Frame struct {
	Step     int       `json:"step"`
	Action   string    `json:"action"`
	Offset   float64   `json:"offset"`
	Page     int       `json:"page"`
	Selected *int      `json:"selected,omitempty"`
	Visible  []Visible `json:"visible"`
	Events   []Event   `json:"events,omitempty"`
}

// Visible is a materialized item in viewport coordinates along the main axis.
type Visible struct {
	Index  int     `json:"index"`
	Origin float64 `json:"origin"`
	Length float64 `json:"length"`
}

// Stats summarizes a run.
type Stats struct {
	Steps        int `json:"steps"`
	CellsCreated int `json:"cells_created"`
	HighWater    int `json:"high_water"`
	MaxVisible   int `json:"max_visible"`
}

func newTrace(s *Scenario) *Trace {
	return &Trace{
		ID:        uuid.NewString(),
		Scenario:  s.Name,
		Hash:      s.Hash(),
		Direction: s.Direction,
		CreatedAt: time.Now().UTC(),
	}
}

// Indices returns the visible indices of f.
func (f Frame) Indices() []int {
	out := make([]int, len(f.Visible))
	for i, v := range f.Visible {
		out[i] = v.Index
	}
	return out
}

// Last returns the final frame, or the zero frame if there is none.
func (t *Trace) Last() Frame {
	if len(t.Frames) == 0 {
		return Frame{}
	}
	return t.Frames[len(t.Frames)-1]
}

// snapshot records the host state as a frame.
func snapshot(h *Host, step int, action string, events []Event) Frame {
	e := h.Engine()
	ax := geom.NewAxis(e.Direction())
	off := h.Offset()

	f := Frame{
		Step:   step,
		Action: action,
		Offset: off,
		Page:   e.CurrentPage(),
		Events: events,
	}
	for _, slot := range e.VisibleSlots() {
		idx, ok := e.IndexOf(slot)
		if !ok {
			continue
		}
		c := e.Cell(slot)
		f.Visible = append(f.Visible, Visible{
			Index:  idx,
			Origin: ax.Origin(c.Frame) - off,
			Length: ax.Extent(c.Frame),
		})
	}
	return f
}

// observe folds engine pool counters into the stats.
func (st *Stats) observe(e *engine.Engine, visible int) {
	st.CellsCreated = e.Pool().Created()
	st.HighWater = e.Pool().HighWater()
	st.MaxVisible = max(st.MaxVisible, visible)
}
