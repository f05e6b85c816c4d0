package curve3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var _ ParametricCurve = CubicBez{}
var _ Arclener = CubicBez{}

// CubicBez is a cubic Bézier segment in 3D space.
type CubicBez struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
	P2 mgl64.Vec3
	P3 mgl64.Vec3
}

// Eval evaluates the cubic at t using de Casteljau's algorithm.
//
// Evaluation at exactly 0 and 1 returns P0 and P3 without rounding error.
func (c CubicBez) Eval(t float64) mgl64.Vec3 {
	p01 := lerp(c.P0, c.P1, t)
	p12 := lerp(c.P1, c.P2, t)
	p23 := lerp(c.P2, c.P3, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	return lerp(p012, p123, t)
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Len() + d12.Len() + d23.Len() - d03.Len()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := lenSq(dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)))
		ddNorm2 := lenSq(dm1.Add(dm2.Mul(2.0 * xi)))
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			lerp(c.P0, c.P1, 0.5),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		CubicBez{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			lerp(c.P2, c.P3, 0.5),
			c.P3,
		}
}

// SubdivideCurve subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return c.Subdivide()
}

func (c CubicBez) Start() mgl64.Vec3 {
	return c.P0
}

func (c CubicBez) End() mgl64.Vec3 {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(d.Eval(t0).Mul(scale))
	p2 := p3.Sub(d.Eval(t1).Mul(scale))
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return c.Subsegment(t0, t1)
}

// Differentiate returns the derivative of the cubic, which is a quadratic
// Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}
