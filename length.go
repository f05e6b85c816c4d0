package curve3

// DefaultSamples is the number of samples per knot used by [Curve.Length].
const DefaultSamples = 32

// Length estimates the length of the whole curve. It is equivalent to
// LengthOpt(DefaultSamples, 0, 1).
func (c *Curve) Length() float64 {
	return c.LengthOpt(DefaultSamples, 0, 1)
}

// LengthOpt estimates the length of the curve between the ratios start and
// end, by summing the chords of samples*NumKnots() points spaced evenly by
// distance.
//
// Curves with fewer than two knots have a length of 0.
func (c *Curve) LengthOpt(samples int, start, end float64) float64 {
	if len(c.knots) <= 1 {
		return 0
	}
	pts := c.ProjectArray(len(c.knots)*samples, start, end)
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i].Translation.Sub(pts[i-1].Translation).Len()
	}
	return length
}

// Arclen returns the length of the path traced by the knots' translations,
// computed per segment instead of by sampling. Cubic segments are measured
// with Legendre-Gauss quadrature to the given accuracy, lines exactly.
func (c *Curve) Arclen(accuracy float64) float64 {
	n := c.NumSegments()
	if n == 0 {
		return 0
	}
	var length float64
	for _, seg := range c.Segments() {
		length += seg.(Arclener).Arclen(accuracy / float64(n))
	}
	return length
}
