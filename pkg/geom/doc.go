// Package geom provides the coordinate-space primitives used by the scroll engine.
//
// All values are float64 in content coordinates: the origin of the virtual
// content area is (0, 0), x grows to the right and y grows downward.
//
// # Axes
//
// Scrolling happens along a single main axis chosen by [Direction]. An [Axis]
// answers every geometric question in terms of "main" and "cross" so that the
// engine never branches on orientation itself:
//
//	ax := geom.NewAxis(geom.Horizontal)
//	ax.Origin(r)     // r.X
//	ax.MaxEdge(r)    // r.X + r.W
//	ax.Cross(size)   // size.H
//
// # Insets
//
// [Inset] shrinks a rectangle by [Insets] on all four sides. The engine uses it
// to compute the inset-adjusted viewport that tiling works against.
package geom
