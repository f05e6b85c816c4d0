package curve3

// Projects places one transform per ratio, at a distance of
// ratios[i]*maxLength from the start of the curve. Distances are measured
// along the curve, using a table of len(ratios)*samples transforms produced
// by [Curve.ProjectArray].
//
// The first result is always the first knot, regardless of ratios[0].
// Distances beyond the curve's [Curve.Length] continue in a straight line
// along the local X axis of the curve's end, keeping its rotation and scale.
//
// Distances are looked up with a cursor that only moves forward, which is
// efficient for ascending ratios. A ratio smaller than its predecessor maps
// to the start of the predecessor's bracket.
//
// Curves with fewer than two knots return a copy of their knots.
func (c *Curve) Projects(ratios []float64, samples int, maxLength float64) []Transform {
	if len(ratios) == 0 {
		return []Transform{}
	}
	if len(c.knots) <= 1 {
		return c.Knots()
	}

	table := c.ProjectArray(max(len(ratios)*samples, 2), 0, 1)
	lengths := chordLengths(table)
	total := c.Length()
	end := table[len(table)-1]

	out := make([]Transform, len(ratios))
	out[0] = c.knots[0]
	cursor := 0
	for i := 1; i < len(ratios); i++ {
		target := ratios[i] * maxLength
		if total > target {
			var blend float64
			cursor, blend = bracket(lengths, cursor, target)
			out[i] = table[cursor].Lerp(table[cursor+1], blend)
		} else {
			out[i] = end.Translate(end.AxisX().Mul(target - total))
		}
	}
	return out
}

// ProjectRegularly places count transforms at regular distances from the
// start of the curve, the last one at maxLength. See [Curve.Projects].
func (c *Curve) ProjectRegularly(count, samples int, maxLength float64) []Transform {
	if count <= 0 {
		return []Transform{}
	}
	ratios := make([]float64, count)
	for i := 1; i < count; i++ {
		ratios[i] = float64(i) / float64(count-1)
	}
	return c.Projects(ratios, samples, maxLength)
}
