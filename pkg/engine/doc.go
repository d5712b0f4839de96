// Package engine virtualizes an unbounded, one-dimensional sequence of items
// inside a finite scroll container.
//
// # Overview
//
// Only the items intersecting the viewport are materialized as cells. The
// engine keeps them in a contiguous window ordered by index, grows and evicts
// cells at both ends as the viewport moves, and periodically recenters the
// scroll offset inside a large fixed content extent so the user never reaches
// an edge. Item indices are unbounded in both directions; negative indices are
// valid and it is up to the [Delegate] to map them onto its data.
//
// # Host contract
//
// The engine never owns a scroll view. The host passes a [Viewport] snapshot
// into every call and applies what comes back:
//
//	vp, err := eng.Layout(host.Viewport())
//	if err != nil {
//	    return err
//	}
//	host.Apply(vp)
//
// Scroll requests ([ScrollRequest]) are fire-and-forget; the host animates or
// jumps and later calls [Engine.DidEndScrollingAnimation].
//
// # Cells
//
// Cells live in a [pool.Pool] arena and are addressed by [pool.Slot]. The
// delegate obtains them through [Dequeuer.Dequeue] from
// [Delegate.CellForItem] and configures the consumer view stored in
// [pool.Cell.View]. Frames are written by the engine only.
//
// # Paging
//
// With [WithPaging] the engine snaps each drag to the neighbouring item in the
// drag direction. The first layout pass centers index 0 and sets page 0.
//
// The engine is single-threaded and not safe for concurrent use.
package engine
