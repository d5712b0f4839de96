package geom

import "fmt"

// Point is a location in content coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent rectangles never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// Insets are distances inset from each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Inset shrinks r by in on all four sides.
// The result may have a negative size when the insets exceed the rectangle.
func Inset(r Rect, in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Horizontal(),
		H: r.H - in.Vertical(),
	}
}
