package geom

import (
	"fmt"
	"strings"
)

// Direction selects the scrolling (main) axis.
type Direction int

const (
	// Vertical scrolls along y; items stack top to bottom.
	Vertical Direction = iota
	// Horizontal scrolls along x; items stack left to right.
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection converts "horizontal"/"vertical" (case-insensitive, with the
// single-letter forms "h" and "v") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v", "":
		return Vertical, nil
	}
	return Vertical, fmt.Errorf("unknown direction %q", s)
}

// Axis projects 2-D geometry onto a main and a cross axis.
type Axis struct {
	dir Direction
}

// NewAxis returns the axis model for d.
func NewAxis(d Direction) Axis { return Axis{dir: d} }

// Direction returns the scrolling direction of the axis.
func (a Axis) Direction() Direction { return a.dir }

// IsHorizontal reports whether the main axis is x.
func (a Axis) IsHorizontal() bool { return a.dir == Horizontal }

// Main returns the main-axis component of p.
func (a Axis) Main(p Point) float64 {
	if a.IsHorizontal() {
		return p.X
	}
	return p.Y
}

// MainSize returns the main-axis component of s.
func (a Axis) MainSize(s Size) float64 {
	if a.IsHorizontal() {
		return s.W
	}
	return s.H
}

// Cross returns the cross-axis component of s.
func (a Axis) Cross(s Size) float64 {
	if a.IsHorizontal() {
		return s.H
	}
	return s.W
}

// Origin returns the leading edge of r along the main axis.
func (a Axis) Origin(r Rect) float64 {
	if a.IsHorizontal() {
		return r.MinX()
	}
	return r.MinY()
}

// MaxEdge returns the trailing edge of r along the main axis.
func (a Axis) MaxEdge(r Rect) float64 {
	if a.IsHorizontal() {
		return r.MaxX()
	}
	return r.MaxY()
}

// Center returns the midpoint of r along the main axis.
func (a Axis) Center(r Rect) float64 {
	if a.IsHorizontal() {
		return r.MidX()
	}
	return r.MidY()
}

// Extent returns the main-axis size of r.
func (a Axis) Extent(r Rect) float64 { return a.MainSize(r.Size()) }

// Insets returns the leading and trailing insets along the main axis.
func (a Axis) Insets(in Insets) (start, end float64) {
	if a.IsHorizontal() {
		return in.Left, in.Right
	}
	return in.Top, in.Bottom
}

// CrossInsets returns the leading and trailing insets along the cross axis.
func (a Axis) CrossInsets(in Insets) (start, end float64) {
	if a.IsHorizontal() {
		return in.Top, in.Bottom
	}
	return in.Left, in.Right
}

// WithMain returns p with its main-axis component replaced by v.
func (a Axis) WithMain(p Point, v float64) Point {
	if a.IsHorizontal() {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Translate moves r by delta along the main axis.
func (a Axis) Translate(r Rect, delta float64) Rect {
	if a.IsHorizontal() {
		return r.Offset(delta, 0)
	}
	return r.Offset(0, delta)
}

// Place builds a rectangle of size s whose leading main-axis edge is at main
// and whose cross-axis origin is at cross.
func (a Axis) Place(main, cross float64, s Size) Rect {
	if a.IsHorizontal() {
		return Rect{X: main, Y: cross, W: s.W, H: s.H}
	}
	return Rect{X: cross, Y: main, W: s.W, H: s.H}
}

// CenteredCross returns the cross-axis origin that centers an item of size s
// inside bounds shrunk by in.
func (a Axis) CenteredCross(bounds Size, in Insets, s Size) float64 {
	start, end := a.CrossInsets(in)
	available := a.Cross(bounds) - start - end
	return start + (available-a.Cross(s))/2
}
