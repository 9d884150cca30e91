package circlepoints

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// Points returns n points evenly spaced on the circle. The first point lies at
// angle 0, i.e. at (Center.X + Radius, Center.Y), and subsequent points follow
// counter-clockwise in steps of 2π/n.
//
// Points does not validate its inputs. A non-positive n yields an empty set.
func (c Circle) Points(n int) PointSet {
	if n <= 0 {
		return PointSet{}
	}
	ps := make(PointSet, n)
	step := 2.0 * math.Pi / float64(n)
	for i := range ps {
		ps[i] = pointOnCircle(c.Center, c.Radius, step*float64(i))
	}
	return ps
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot() < math.Abs(c.Radius)
}
