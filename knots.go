package curve3

import (
	"fmt"
	"slices"
)

// Curve is a smooth path through an ordered sequence of knots.
//
// Between two consecutive knots, the curve is a cubic Bézier whose handles
// extend TangentLength units along each knot's local X axis, scaled by the
// knot's scale. If TangentLength isn't positive, segments are straight lines
// between knot translations instead. Scale is interpolated linearly and
// rotation spherically, in both cases.
//
// The zero value is an empty curve, ready to use. Curves do no caching, so
// every query reflects the current knots and parameters. A Curve must not be
// modified while a query is running.
type Curve struct {
	knots []Transform

	// TangentLength is the length of the tangent handles, in the knots' local
	// space.
	TangentLength float64
	// AlignOnTangent makes [Curve.ProjectArray] orient each result so that its
	// local X axis follows the curve, instead of interpolating between the
	// knots' rotations.
	AlignOnTangent bool
}

// NewCurve returns a curve with the given knots and tangent length.
func NewCurve(tangentLength float64, knots ...Transform) *Curve {
	return &Curve{
		knots:         slices.Clone(knots),
		TangentLength: tangentLength,
	}
}

// PushKnot appends a knot to the end of the curve.
func (c *Curve) PushKnot(t Transform) {
	c.knots = append(c.knots, t)
}

// SetKnots replaces all knots. The slice is copied.
func (c *Curve) SetKnots(knots []Transform) {
	c.knots = slices.Clone(knots)
}

// SetKnot sets the i-th knot. If i is past the end of the curve, the curve is
// first extended with identity transforms up to i.
//
// Note that the identity knots inserted this way sit at the origin and will
// shape the curve like any other knot.
//
// SetKnot panics if i is negative.
func (c *Curve) SetKnot(i int, t Transform) {
	if i < 0 {
		panic(fmt.Sprintf("curve3: negative knot index %d", i))
	}
	for len(c.knots) <= i {
		c.knots = append(c.knots, Identity())
	}
	c.knots[i] = t
}

// Knot returns the i-th knot.
func (c *Curve) Knot(i int) Transform {
	return c.knots[i]
}

// Knots returns a copy of the curve's knots.
func (c *Curve) Knots() []Transform {
	return slices.Clone(c.knots)
}

// NumKnots returns the number of knots.
func (c *Curve) NumKnots() int {
	return len(c.knots)
}

// NumSegments returns the number of segments between knots. Curves with
// fewer than two knots have no segments.
func (c *Curve) NumSegments() int {
	return max(len(c.knots)-1, 0)
}
