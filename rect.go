package circlepoints

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromCenter returns a rectangle extending half of size in every
// direction from center.
func NewRectFromCenter(center Point, size Size) Rect {
	return Rect{
		X0: center.X - size.Width/2,
		Y0: center.Y - size.Height/2,
		X1: center.X + size.Width/2,
		Y1: center.Y + size.Height/2,
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint returns the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a new rectangle that is expanded by width and height on
// each side.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Square returns the smallest square sharing r's center that contains r.
func (r Rect) Square() Rect {
	side := max(r.Width(), r.Height())
	return NewRectFromCenter(r.Center(), Sz(side, side))
}
