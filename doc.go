// Package circlepoints computes points evenly distributed on a circle, along
// with the small set of 2D primitives needed to describe them and to lay them
// out for rendering.
//
// # Points on a circle
//
// A [CircleSpec] names a center, a radius and a point count. [Generate] maps
// it to a [PointSet]: point i lies at angle θᵢ = 2πi/n, that is
//
//	xᵢ = cx + r·cos θᵢ
//	yᵢ = cy + r·sin θᵢ
//
// The first point is always (cx + r, cy) and the remaining points follow
// counter-clockwise in a y-up coordinate system. Generate is a pure function:
// the same spec always yields the same points in the same order.
//
// Generate does not check its input. Values coming from users should pass
// through [CircleSpec.Validate] first, which reports violations as a
// [*ValidationError].
//
// # Styles
//
// [RenderStyle] carries the point color and the axis unit label. Neither
// affects geometry; they are consumed by the render and report packages.
//
// # Primitives
//
// [Point], [Vec2], [Size], [Rect] and [Circle] are plain values. Points are
// positions, vectors are displacements, and the two are kept apart: the
// difference of two points is a vector, and a point can be translated by a
// vector.
package circlepoints
