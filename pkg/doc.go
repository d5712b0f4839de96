// Package pkg provides the libraries behind infiniscroll, a cell
// virtualization engine for endless bidirectional lists.
//
// # Overview
//
// The engine presents an unbounded sequence of items, indexed by any
// integer, inside a finite scrollable content area. Only the items that
// intersect the viewport are materialized, as cells drawn from a reuse pool.
// When the offset drifts too far from the middle of the content area, it is
// moved back and every visible cell is shifted by the same amount, so the
// user never reaches an edge.
//
// The pkg directory is organized into four areas:
//
//  1. [geom], [pool], [engine] - the layout core
//  2. [scenario] - scripted scroll sessions and their traces
//  3. [cache], [io] - trace caching (file or Redis) and JSON import/export
//  4. [errors], [observability], [buildinfo] - shared infrastructure
//
// # Architecture
//
//	Delegate (sizes, cells)      Host (offset, bounds, insets)
//	         ↓                              ↓
//	    [engine] tile → recenter → relayout → paginate
//	         ↓
//	    [pool] cells by reuse identifier
//
// # Quick Start
//
//	e, err := engine.New(myDelegate, engine.WithDirection(geom.Horizontal))
//	if err != nil {
//	    return err
//	}
//	e.Register("card", func() any { return new(Card) })
//
//	vp, err = e.Layout(vp) // on every host layout pass
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/geom
// [pool]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/pool
// [engine]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/engine
// [scenario]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/scenario
// [cache]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/infiniscroll/pkg/buildinfo
package pkg
