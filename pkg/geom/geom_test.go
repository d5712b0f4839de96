package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 60}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MinX", r.MinX(), 10},
		{"MaxX", r.MaxX(), 50},
		{"MidX", r.MidX(), 30},
		{"MinY", r.MinY(), 20},
		{"MaxY", r.MaxY(), 80},
		{"MidY", r.MidY(), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "inside", p: Point{X: 10, Y: 10}, want: true},
		{name: "origin", p: Point{X: 0, Y: 0}, want: true},
		{name: "right edge exclusive", p: Point{X: 100, Y: 10}, want: false},
		{name: "bottom edge exclusive", p: Point{X: 10, Y: 50}, want: false},
		{name: "outside", p: Point{X: -1, Y: 10}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestInset(t *testing.T) {
	r := Rect{X: 0, Y: 100, W: 300, H: 200}
	got := Inset(r, Insets{Top: 10, Left: 20, Bottom: 30, Right: 40})
	want := Rect{X: 20, Y: 110, W: 240, H: 160}
	if got != want {
		t.Errorf("Inset() = %v, want %v", got, want)
	}
}

func TestAxisProjections(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}
	s := Size{W: 7, H: 9}
	in := Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}

	tests := []struct {
		name       string
		dir        Direction
		origin     float64
		maxEdge    float64
		center     float64
		main       float64
		cross      float64
		start, end float64
	}{
		{
			name:   "horizontal",
			dir:    Horizontal,
			origin: 10, maxEdge: 110, center: 60,
			main: 7, cross: 9,
			start: 2, end: 4,
		},
		{
			name:   "vertical",
			dir:    Vertical,
			origin: 20, maxEdge: 60, center: 40,
			main: 9, cross: 7,
			start: 1, end: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := NewAxis(tt.dir)
			if got := ax.Origin(r); got != tt.origin {
				t.Errorf("Origin() = %v, want %v", got, tt.origin)
			}
			if got := ax.MaxEdge(r); got != tt.maxEdge {
				t.Errorf("MaxEdge() = %v, want %v", got, tt.maxEdge)
			}
			if got := ax.Center(r); got != tt.center {
				t.Errorf("Center() = %v, want %v", got, tt.center)
			}
			if got := ax.MainSize(s); got != tt.main {
				t.Errorf("MainSize() = %v, want %v", got, tt.main)
			}
			if got := ax.Cross(s); got != tt.cross {
				t.Errorf("Cross() = %v, want %v", got, tt.cross)
			}
			start, end := ax.Insets(in)
			if start != tt.start || end != tt.end {
				t.Errorf("Insets() = (%v, %v), want (%v, %v)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestAxisPlaceAndTranslate(t *testing.T) {
	s := Size{W: 30, H: 10}

	h := NewAxis(Horizontal)
	if got, want := h.Place(100, 5, s), (Rect{X: 100, Y: 5, W: 30, H: 10}); got != want {
		t.Errorf("horizontal Place() = %v, want %v", got, want)
	}
	if got := h.Origin(h.Translate(h.Place(100, 5, s), -40)); got != 60 {
		t.Errorf("horizontal Translate() origin = %v, want 60", got)
	}

	v := NewAxis(Vertical)
	if got, want := v.Place(100, 5, s), (Rect{X: 5, Y: 100, W: 30, H: 10}); got != want {
		t.Errorf("vertical Place() = %v, want %v", got, want)
	}
	if got := v.WithMain(Point{X: 1, Y: 2}, 9); got != (Point{X: 1, Y: 9}) {
		t.Errorf("vertical WithMain() = %v, want {1 9}", got)
	}
}

func TestCenteredCross(t *testing.T) {
	ax := NewAxis(Horizontal)
	bounds := Size{W: 300, H: 200}
	in := Insets{Top: 20, Bottom: 40}

	// available = 200 - 60 = 140, item 40 -> 20 + 50
	if got := ax.CenteredCross(bounds, in, Size{W: 10, H: 40}); got != 70 {
		t.Errorf("CenteredCross() = %v, want 70", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "horizontal", want: Horizontal},
		{in: "H", want: Horizontal},
		{in: "vertical", want: Vertical},
		{in: "", want: Vertical},
		{in: "diagonal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
