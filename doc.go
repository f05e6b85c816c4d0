// Package curve3 evaluates smooth 3D curves defined by a sparse sequence of
// rigid transforms, and resamples them uniformly by distance.
//
// It was designed to place objects such as cameras, instanced geometry or rig
// segments evenly along a path, no matter how unevenly the path's control
// transforms are spaced.
//
// # Knots and segments
//
// A [Curve] is defined by its knots, an ordered sequence of [Transform]
// values made of a translation, a rotation and a non-uniform scale. Between
// each pair of consecutive knots lies a segment. Curves don't store tangent
// vectors; instead, each segment is a cubic Bézier ([CubicBez]) whose handles
// extend from each knot along its local X axis, by [Curve.TangentLength]
// units in the knot's local space. This means that rotating a knot steers the
// curve, and scaling a knot stretches its handles. A non-positive tangent
// length turns all segments into straight lines ([Line]).
//
// Scale is interpolated linearly between knots, and rotation spherically.
//
// # Parameters and distances
//
// [Curve.Project] evaluates the curve at a ratio in [0, 1]. Ratios are
// distributed evenly over segments: with five knots, 0.25 is always the
// second knot, regardless of how long each segment is. Within a segment, the
// Bézier's parameter doesn't map evenly to distance either.
//
// [Curve.ProjectArray] instead returns transforms spaced evenly by distance.
// It oversamples the curve by [Oversampling], measures the chords between
// samples, and inverts the cumulative distance. [Curve.Length] estimates the
// length of the curve the same way, while [Curve.Arclen] integrates each
// segment's arc length.
//
// [Curve.Projects] and [Curve.ProjectRegularly] place transforms at
// fractions of a caller-chosen length. Fractions past the end of the curve
// continue in a straight line along the final transform's X axis, which
// allows laying out a fixed number of objects along curves of varying
// length.
//
// # Orientation
//
// When [Curve.AlignOnTangent] is set, transforms produced by
// [Curve.ProjectArray] (and thus [Curve.Projects]) have their local X axis
// aligned with the direction of travel, with their Y axis kept as close as
// possible to the interpolated one.
//
// # Concurrency
//
// Sampling evaluates the curve at many independent ratios. Large sample
// counts are spread over multiple goroutines; see [ThreadingThreshold] and
// [NumThreads]. Curves are otherwise not safe for concurrent modification;
// they must not be modified while being queried.
package curve3
