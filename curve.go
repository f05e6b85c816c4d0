package curve3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument.
const DefaultAccuracy = 1e-6

// ParametricCurve describes a curve in 3D space parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) mgl64.Vec3
	// Get a subsegment of the curve for the given parameter range.
	SubsegmentCurve(start, end float64) ParametricCurve
	// Subdivide into (roughly) halves.
	SubdivideCurve() (ParametricCurve, ParametricCurve)
	Start() mgl64.Vec3
	End() mgl64.Vec3
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// chordLengths returns the cumulative distance along a sequence of sampled
// transforms. The first entry is always 0.
func chordLengths(samples []Transform) []float64 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		out[i] = out[i-1] + samples[i].Translation.Sub(samples[i-1].Translation).Len()
	}
	return out
}

// bracket advances cursor through the cumulative distance table until
// [dists[cursor], dists[cursor+1]] contains target, or the last bracket is
// reached. The cursor never moves backwards. It returns the new cursor and
// the position of target within the bracket, clamped to [0, 1].
//
// dists must have at least two entries.
func bracket(dists []float64, cursor int, target float64) (int, float64) {
	last := len(dists) - 2
	cursor = clamp(cursor, 0, last)
	for cursor < last && dists[cursor+1] < target {
		cursor++
	}
	d0, d1 := dists[cursor], dists[cursor+1]
	span := d1 - d0
	if !(span > 1e-12) {
		// Coincident samples; there is nothing to interpolate.
		return cursor, 0
	}
	return cursor, clamp((target-d0)/span, 0, 1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm, dm1, dm2 mgl64.Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Len()
		dmx := d.Sub(dm1.Mul(xi)).Len()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
