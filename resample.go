package curve3

// Oversampling is the number of parameter-uniform samples taken per
// requested sample when resampling a curve by arc length.
const Oversampling = 5

// sample evaluates the curve at n ratios spread evenly over [start, end]. The
// first and last samples are evaluated at exactly start and end.
func (c *Curve) sample(n int, start, end float64) []Transform {
	out := make([]Transform, n)
	if n == 1 {
		out[0] = c.Project(start)
		return out
	}
	last := float64(n - 1)
	parallelFor(n, func(i int) {
		f := float64(i) / last
		out[i] = c.Project(start*(1-f) + end*f)
	})
	return out
}

// ProjectArray returns count transforms between the ratios start and end,
// spaced evenly by distance along the curve. The first and last results are
// the curve evaluated at start and end.
//
// Distances are approximated by oversampling the curve and measuring the
// chords between samples.
//
// If AlignOnTangent is set, each result is rotated to face along the curve:
// its local X axis follows the tangent, and its local Y axis stays as close
// as possible to the interpolated one.
//
// Curves with a single knot always produce a single transform.
func (c *Curve) ProjectArray(count int, start, end float64) []Transform {
	if count <= 0 {
		return []Transform{}
	}
	if len(c.knots) == 1 || count == 1 {
		return []Transform{c.Project(start)}
	}

	irregular := c.sample(count*Oversampling, start, end)
	dists := chordLengths(irregular)
	spacing := dists[len(dists)-1] / float64(count-1)

	out := make([]Transform, count)
	out[0] = irregular[0]
	out[count-1] = irregular[len(irregular)-1]
	cursor := 0
	for i := 1; i < count-1; i++ {
		var blend float64
		cursor, blend = bracket(dists, cursor, spacing*float64(i))
		out[i] = irregular[cursor].Lerp(irregular[cursor+1], blend)
	}

	if c.AlignOnTangent {
		alignToTangent(out)
	}
	return out
}

// alignToTangent rotates every transform to face the direction of travel
// along the sequence, keeping translations and scales. Transforms whose
// direction can't be determined keep their rotation.
func alignToTangent(ts []Transform) {
	if len(ts) < 2 {
		return
	}
	// Directions are computed from translations only, which we don't modify,
	// so updating in place is safe.
	last := len(ts) - 1
	for i := range ts {
		dir := ts[min(i+1, last)].Translation.Sub(ts[max(i-1, 0)].Translation)
		rot, ok := faceRotation(dir, ts[i].AxisY())
		if !ok {
			continue
		}
		ts[i].Rotation = rot.Mul(forwardCorrection).Normalize()
	}
}
