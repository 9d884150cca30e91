package circlepoints

import (
	"math"
)

const (
	// MinRadius is the smallest radius accepted at the input boundary.
	MinRadius = 0.1
	// MinPoints is the smallest point count accepted at the input boundary.
	MinPoints = 3
)

// CircleSpec describes the circle to sample and how many points to take.
type CircleSpec struct {
	Center Point
	Radius float64
	Count  int
}

// DefaultSpec returns the parameters a fresh session starts with.
func DefaultSpec() CircleSpec {
	return CircleSpec{
		Center: Pt(0, 0),
		Radius: 5,
		Count:  12,
	}
}

func (s CircleSpec) Circle() Circle {
	return Circle{Center: s.Center, Radius: s.Radius}
}

// Validate checks s against the input constraints. It returns a
// *ValidationError describing the first violated constraint.
func (s CircleSpec) Validate() error {
	switch {
	case s.Center.IsNaN() || s.Center.IsInf():
		return &ValidationError{Field: "center", Value: s.Center, Reason: "must be finite"}
	case math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0):
		return &ValidationError{Field: "radius", Value: s.Radius, Reason: "must be finite"}
	case s.Radius < MinRadius:
		return &ValidationError{Field: "radius", Value: s.Radius, Reason: "must be at least 0.1"}
	case s.Count < MinPoints:
		return &ValidationError{Field: "count", Value: s.Count, Reason: "must be at least 3"}
	}
	return nil
}

// Generate computes s.Count points evenly distributed on the circle described
// by s. Point i lies at angle 2πi/s.Count, measured counter-clockwise from the
// positive x axis.
//
// Generate is a pure function of s and performs no validation; callers are
// expected to have called [CircleSpec.Validate].
func Generate(s CircleSpec) PointSet {
	return s.Circle().Points(s.Count)
}

// RenderStyle holds cosmetic parameters. It has no effect on geometry.
type RenderStyle struct {
	Color    HexColor
	AxisUnit string
}

func DefaultStyle() RenderStyle {
	return RenderStyle{
		Color:    "#0000FF",
		AxisUnit: "m",
	}
}

func (st RenderStyle) Validate() error {
	if _, err := st.Color.NRGBA(); err != nil {
		return &ValidationError{Field: "color", Value: string(st.Color), Reason: err.Error()}
	}
	if st.AxisUnit == "" {
		return &ValidationError{Field: "unit", Value: st.AxisUnit, Reason: "must not be empty"}
	}
	return nil
}
