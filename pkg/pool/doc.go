// Package pool implements the recycling store for materialized cells.
//
// Cells live in an arena and are addressed by a stable [Slot]. A slot stays
// valid while its cell is visible or parked in a free list; once a cell is
// discarded its slot may be handed out again for a new cell.
//
// # Type keys
//
// Every cell belongs to a type key fixed at creation. A [Factory] must be
// registered for a key before any cell of that key is requested:
//
//	p := pool.New()
//	_ = p.Register("card", func() any { return &CardView{} })
//
//	slot, err := p.Acquire("card", 42)  // reuses a free "card" cell or creates one
//	...
//	p.Release(slot)                     // parks it, or discards it if the list is full
//
// Requesting an unregistered key fails with errors.ErrCodeUnregisteredType.
//
// # Retention
//
// A single high-water mark, the largest visible count ever reported through
// [Pool.ObserveVisible], bounds every free list. A list that already holds that
// many cells discards further releases.
//
// # Concurrency
//
// A Pool is owned by one engine and is not safe for concurrent use.
package pool
