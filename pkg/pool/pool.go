package pool

import (
	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/observability"
)

// Slot addresses a cell in the pool arena.
type Slot int

// NoSlot is the zero reference; it never addresses a live cell.
const NoSlot Slot = -1

// Factory creates the consumer view for a new cell of a registered type.
type Factory func() any

// Reusable is implemented by views that reset state before being handed out
// again for a different index.
type Reusable interface {
	PrepareForReuse()
}

// Cell is a materialized, reusable item.
type Cell struct {
	Slot    Slot
	TypeKey string
	Frame   geom.Rect
	Hidden  bool
	View    any

	attached bool
	nextFree Slot
}

// Attached reports whether the cell is part of the layout surface. Discarded
// cells are detached and their slot is recycled.
func (c *Cell) Attached() bool { return c.attached }

// Pool is an arena of cells with per-type free lists and an index map. Cells
// are allocated individually, so a *Cell stays valid while the arena grows.
type Pool struct {
	cells     []*Cell
	freeSlots Slot // head of the recycled-slot chain through Cell.nextFree

	factories map[string]Factory
	free      map[string][]Slot
	indexes   map[Slot]int

	highWater int
	created   int
	live      int
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{
		freeSlots: NoSlot,
		factories: make(map[string]Factory),
		free:      make(map[string][]Slot),
		indexes:   make(map[Slot]int),
	}
}

// Register binds a factory to typeKey. Registering a key again replaces its
// factory; cells already created keep their views.
func (p *Pool) Register(typeKey string, f Factory) error {
	if err := errors.ValidateTypeKey(typeKey); err != nil {
		return err
	}
	if f == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil factory for type %q", typeKey)
	}
	p.factories[typeKey] = f
	return nil
}

// HasRegistrations reports whether any type key has been registered.
func (p *Pool) HasRegistrations() bool { return len(p.factories) > 0 }

// Acquire returns a cell of typeKey bound to index. A free cell is reused when
// one exists; otherwise the registered factory creates a new one.
func (p *Pool) Acquire(typeKey string, index int) (Slot, error) {
	if list := p.free[typeKey]; len(list) > 0 {
		slot := list[len(list)-1]
		p.free[typeKey] = list[:len(list)-1]

		c := p.cells[slot]
		if r, ok := c.View.(Reusable); ok {
			r.PrepareForReuse()
		}
		c.Hidden = false
		p.indexes[slot] = index
		observability.Pool().OnAcquire(typeKey, true)
		return slot, nil
	}

	factory, ok := p.factories[typeKey]
	if !ok {
		return NoSlot, errors.New(errors.ErrCodeUnregisteredType,
			"cell type not registered for identifier %q", typeKey)
	}

	slot := p.alloc()
	*p.cells[slot] = Cell{
		Slot:     slot,
		TypeKey:  typeKey,
		View:     factory(),
		attached: true,
		nextFree: NoSlot,
	}
	p.indexes[slot] = index
	p.created++
	p.live++
	observability.Pool().OnAcquire(typeKey, false)
	return slot, nil
}

// Release takes a cell out of the index map and returns it to its free list,
// or discards it when the list already holds HighWater cells. Releasing a slot
// that is not live is a no-op.
func (p *Pool) Release(slot Slot) {
	c := p.Cell(slot)
	if c == nil || !c.attached {
		return
	}
	delete(p.indexes, slot)

	list := p.free[c.TypeKey]
	if len(list) >= p.highWater {
		key := c.TypeKey
		p.discard(slot)
		observability.Pool().OnRelease(key, false)
		return
	}

	c.Hidden = true
	p.free[c.TypeKey] = append(list, slot)
	observability.Pool().OnRelease(c.TypeKey, true)
}

// ObserveVisible raises the high-water mark to n if n exceeds it.
func (p *Pool) ObserveVisible(n int) {
	p.highWater = max(p.highWater, n)
}

// HighWater returns the largest visible count observed so far.
func (p *Pool) HighWater() int { return p.highWater }

// Cell returns the cell at slot, or nil for an unknown slot.
func (p *Pool) Cell(slot Slot) *Cell {
	if slot < 0 || int(slot) >= len(p.cells) {
		return nil
	}
	return p.cells[slot]
}

// Index returns the logical index bound to slot.
func (p *Pool) Index(slot Slot) (int, bool) {
	i, ok := p.indexes[slot]
	return i, ok
}

// Bind confirms that slot was acquired for index and is still bound to it.
// Unknown, discarded and parked slots fail, as do slots acquired for a
// different index.
func (p *Pool) Bind(slot Slot, index int) bool {
	c := p.Cell(slot)
	if c == nil || !c.attached {
		return false
	}
	got, ok := p.indexes[slot]
	return ok && got == index
}

// FreeCount returns the number of parked cells for typeKey.
func (p *Pool) FreeCount(typeKey string) int { return len(p.free[typeKey]) }

// Live returns the number of attached cells, visible or parked.
func (p *Pool) Live() int { return p.live }

// Created returns how many times a factory has run.
func (p *Pool) Created() int { return p.created }

// alloc hands out a recycled slot or grows the arena.
func (p *Pool) alloc() Slot {
	if p.freeSlots != NoSlot {
		slot := p.freeSlots
		p.freeSlots = p.cells[slot].nextFree
		return slot
	}
	p.cells = append(p.cells, &Cell{})
	return Slot(len(p.cells) - 1)
}

// discard detaches the cell and threads its slot onto the recycled chain.
func (p *Pool) discard(slot Slot) {
	*p.cells[slot] = Cell{Slot: slot, nextFree: p.freeSlots}
	p.freeSlots = slot
	p.live--
}
