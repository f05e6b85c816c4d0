package curve3

import "github.com/go-gl/mathgl/mgl64"

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier segment in 3D space. It mostly serves as the
// derivative of a [CubicBez].
type QuadBez struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
	P2 mgl64.Vec3
}

func (q QuadBez) Eval(t float64) mgl64.Vec3 {
	return lerp(lerp(q.P0, q.P1, t), lerp(q.P1, q.P2, t), t)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, lerp(q.P0, q.P1, 0.5), pm},
		QuadBez{pm, lerp(q.P1, q.P2, 0.5), q.P2}
}

func (q QuadBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return q.Subdivide()
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Add(lerp(q.P1.Sub(q.P0), q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) SubsegmentCurve(t0 float64, t1 float64) ParametricCurve {
	return q.Subsegment(t0, t1)
}

func (q QuadBez) Differentiate() Line {
	return Line{
		q.P1.Sub(q.P0).Mul(2),
		q.P2.Sub(q.P1).Mul(2),
	}
}

func (q QuadBez) Start() mgl64.Vec3 {
	return q.P0
}

func (q QuadBez) End() mgl64.Vec3 {
	return q.P2
}
