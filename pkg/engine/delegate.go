package engine

import (
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/pool"
)

// Delegate supplies item sizes and cells and receives notifications.
//
// SizeForItem and CellForItem are called during layout passes for arbitrary,
// possibly negative, indices. Embed [NopNotifications] to implement only the
// two data methods.
type Delegate interface {
	// SizeForItem returns the frame size of the item at index. The main-axis
	// component must be finite and non-negative.
	SizeForItem(index int) geom.Size

	// CellForItem dequeues a cell for index and configures its view.
	CellForItem(d Dequeuer, index int) (pool.Slot, error)

	DidSelectItem(index int)
	DidChangePage(page int)

	// WillDisplay and WillScrollTo receive the live cell. The pointer stays
	// valid while the arena grows; once the slot is released the cell may be
	// handed out again for another index.
	WillDisplay(c *pool.Cell, index int)

	// DidEndDisplaying receives a copy of the cell taken just before it was
	// released; the slot may already be parked or recycled.
	DidEndDisplaying(c *pool.Cell, index int)

	WillScrollTo(c *pool.Cell, index int)
}

// Dequeuer hands out cells from the engine's pool.
type Dequeuer interface {
	Dequeue(typeKey string, index int) (pool.Slot, error)
	Cell(slot pool.Slot) *pool.Cell
}

// NopNotifications implements the notification half of [Delegate] as no-ops.
type NopNotifications struct{}

func (NopNotifications) DidSelectItem(int)                {}
func (NopNotifications) DidChangePage(int)                {}
func (NopNotifications) WillDisplay(*pool.Cell, int)      {}
func (NopNotifications) DidEndDisplaying(*pool.Cell, int) {}
func (NopNotifications) WillScrollTo(*pool.Cell, int)     {}
