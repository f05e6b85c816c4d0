package curve3

import "github.com/go-gl/mathgl/mgl64"

// Line represents a line segment in 3D space.
type Line struct {
	// The line's start point.
	P0 mgl64.Vec3
	// The line's end point.
	P1 mgl64.Vec3
}

var _ ParametricCurve = Line{}
var _ Arclener = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Len()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Eval(t float64) mgl64.Vec3 {
	return lerp(l.P0, l.P1, t)
}

func (l Line) Start() mgl64.Vec3 { return l.P0 }
func (l Line) End() mgl64.Vec3   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve {
	return l.Subsegment(start, end)
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return l.Subdivide()
}
