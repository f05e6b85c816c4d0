package curve3

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// segmentAt maps a global parameter to a segment index and the parameter
// within that segment. The curve must have at least two knots.
//
// Ratios outside of [0, 1] land on the first or last segment, with a local
// parameter outside of [0, 1].
func (c *Curve) segmentAt(ratio float64) (int, float64) {
	x := ratio * float64(len(c.knots)-1)
	f := math.Floor(x)
	if math.IsNaN(f) {
		return 0, x
	}
	seg := int(clamp(f, 0, float64(len(c.knots)-2)))
	return seg, x - float64(seg)
}

// Segment returns the path of the translation between knots i and i+1: a
// [Line] if TangentLength isn't positive, a [CubicBez] otherwise.
func (c *Curve) Segment(i int) ParametricCurve {
	a, b := c.knots[i], c.knots[i+1]
	if c.TangentLength <= 0 {
		return Line{a.Translation, b.Translation}
	}
	return c.cubic(a, b)
}

// Segments returns an iterator over the curve's segments and their indices.
func (c *Curve) Segments() iter.Seq2[int, ParametricCurve] {
	return func(yield func(int, ParametricCurve) bool) {
		for i := range c.NumSegments() {
			if !yield(i, c.Segment(i)) {
				return
			}
		}
	}
}

// cubic builds the Bézier between two knots. The handles follow each knot's X
// axis and are affected by the knot's rotation and scale.
func (c *Curve) cubic(a, b Transform) CubicBez {
	handle := mgl64.Vec3{c.TangentLength, 0, 0}
	return CubicBez{
		P0: a.Translation,
		P1: a.Translation.Add(a.TransformVector(handle)),
		P2: b.Translation.Sub(b.TransformVector(handle)),
		P3: b.Translation,
	}
}

// Project evaluates the curve at ratio, where 0 is the first knot and 1 the
// last one. Ratios are spread evenly over segments, not over distance; use
// [Curve.ProjectArray] or [Curve.Projects] for distance-based placement.
//
// An empty curve evaluates to [Identity], and a curve with a single knot to
// that knot. Ratios outside of [0, 1] extrapolate the first or last segment.
func (c *Curve) Project(ratio float64) Transform {
	switch len(c.knots) {
	case 0:
		return Identity()
	case 1:
		return c.knots[0]
	}

	seg, u := c.segmentAt(ratio)
	a, b := c.knots[seg], c.knots[seg+1]
	var pos mgl64.Vec3
	if c.TangentLength <= 0 {
		pos = lerp(a.Translation, b.Translation, u)
	} else {
		pos = c.cubic(a, b).Eval(u)
	}
	return Transform{
		Translation: pos,
		Rotation:    slerp(a.Rotation, b.Rotation, u),
		Scale:       lerp(a.Scale, b.Scale, u),
	}
}
