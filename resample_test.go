package curve3

import (
	"fmt"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func chords(ts []Transform) []float64 {
	out := make([]float64, 0, len(ts))
	for i := 1; i < len(ts); i++ {
		out = append(out, ts[i].Translation.Sub(ts[i-1].Translation).Len())
	}
	return out
}

func variance(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var v float64
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return v / float64(len(xs))
}

func TestProjectArrayCount(t *testing.T) {
	curves := map[string]*Curve{
		"empty":      {},
		"linear":     NewCurve(0, knotAt(0, 0, 0), knotAt(1, 0, 0), knotAt(10, 0, 0)),
		"cubic":      NewCurve(2, knotAt(0, 0, 0), knotAt(3, 4, 0), knotAt(3, 4, 7)),
		"coincident": NewCurve(0, knotAt(1, 1, 1), knotAt(1, 1, 1), knotAt(1, 1, 1)),
	}
	for name, c := range curves {
		for _, count := range []int{1, 2, 3, 7, 64} {
			got := c.ProjectArray(count, 0, 1)
			if len(got) != count {
				t.Errorf("%s: got %d transforms, want %d", name, len(got), count)
			}
			for i, tr := range got {
				if tr.IsNaN() {
					t.Errorf("%s: transform %d of %d is NaN: %s", name, i, count, tr)
				}
			}
		}
		if got := c.ProjectArray(0, 0, 1); len(got) != 0 {
			t.Errorf("%s: got %d transforms, want 0", name, len(got))
		}
	}
}

func TestProjectArraySingleKnot(t *testing.T) {
	k := knotAt(3, 2, 1)
	c := NewCurve(1, k)
	diff(t, []Transform{k}, c.ProjectArray(10, 0, 1))
}

func TestProjectArrayEndpoints(t *testing.T) {
	c := NewCurve(2, knotAt(0, 0, 0), knotAt(3, 4, 0), knotAt(3, 4, 7))
	got := c.ProjectArray(9, 0.2, 0.9)
	diff(t, c.Project(0.2), got[0])
	diff(t, c.Project(0.9), got[len(got)-1])
}

func TestProjectArrayUniformSpacing(t *testing.T) {
	// The first segment is a ninth of the length of the second one.
	c := NewCurve(0, knotAt(0, 0, 0), knotAt(1, 0, 0), knotAt(10, 0, 0))
	const n = 20

	got := c.ProjectArray(n, 0, 1)
	for i, tr := range got {
		want := mgl64.Vec3{10 * float64(i) / float64(n-1), 0, 0}
		assertNear(t, tr.Translation, want, 1e-9)
	}

	regular := make([]Transform, n)
	for i := range regular {
		regular[i] = c.Project(float64(i) / float64(n-1))
	}
	if vg, vr := variance(chords(got)), variance(chords(regular)); vg >= vr {
		t.Errorf("resampled variance %g isn't lower than parametric variance %g", vg, vr)
	}
}

func TestProjectArrayUniformSpacingCubic(t *testing.T) {
	a := knotAt(0, 0, 0)
	b := knotAt(5, 2, 0)
	b.Rotation = FromAxisAngle(mgl64.Vec3{0, 0, 1}, math.Pi/6)
	d := knotAt(20, 0, 3)
	c := NewCurve(2, a, b, d)
	const n = 40

	got := c.ProjectArray(n, 0, 1)
	regular := make([]Transform, n)
	for i := range regular {
		regular[i] = c.Project(float64(i) / float64(n-1))
	}
	vg, vr := variance(chords(got)), variance(chords(regular))
	if vg >= vr {
		t.Errorf("resampled variance %g isn't lower than parametric variance %g", vg, vr)
	}
	mean := c.Length() / float64(n-1)
	for i, d := range chords(got) {
		if math.Abs(d-mean) > 0.05*mean {
			t.Errorf("chord %d has length %g, want about %g", i, d, mean)
		}
	}
}

func TestProjectArrayInterpolatesRotation(t *testing.T) {
	a := knotAt(0, 0, 0)
	b := knotAt(10, 0, 0)
	b.Rotation = FromAxisAngle(mgl64.Vec3{1, 0, 0}, math.Pi/2)
	c := NewCurve(0, a, b)

	got := c.ProjectArray(3, 0, 1)
	want := Identity()
	want.Translation = mgl64.Vec3{5, 0, 0}
	want.Rotation = FromAxisAngle(mgl64.Vec3{1, 0, 0}, math.Pi/4)
	if !got[1].ApproxEqual(want, 1e-9) {
		t.Errorf("got %s, want %s", got[1], want)
	}
}

func TestProjectArrayAlignOnTangent(t *testing.T) {
	tests := []struct {
		knots []Transform
		fwd   mgl64.Vec3
	}{
		{[]Transform{knotAt(0, 0, 0), knotAt(0, 0, 10)}, mgl64.Vec3{0, 0, 1}},
		{[]Transform{knotAt(0, 0, 0), knotAt(10, 0, 0)}, mgl64.Vec3{1, 0, 0}},
		{[]Transform{knotAt(0, 0, 0), knotAt(-3, 0, -3)}, mgl64.Vec3{-1, 0, -1}.Normalize()},
	}
	for _, tt := range tests {
		c := NewCurve(0, tt.knots...)
		plain := c.ProjectArray(6, 0, 1)
		c.AlignOnTangent = true
		for i, tr := range c.ProjectArray(6, 0, 1) {
			assertNear(t, tr.AxisX(), tt.fwd, 1e-9)
			assertNear(t, tr.AxisY(), mgl64.Vec3{0, 1, 0}, 1e-9)
			if tr.Translation != plain[i].Translation || tr.Scale != plain[i].Scale {
				t.Errorf("alignment changed translation or scale of transform %d", i)
			}
		}
	}
}

func TestProjectArrayAlignOnTangentCurved(t *testing.T) {
	// A quarter turn in the XZ plane.
	a := knotAt(0, 0, 0)
	b := knotAt(10, 0, 10)
	b.Rotation = FromAxisAngle(mgl64.Vec3{0, 1, 0}, -math.Pi/2)
	c := NewCurve(5, a, b)
	c.AlignOnTangent = true

	got := c.ProjectArray(32, 0, 1)
	for i := 1; i < len(got)-1; i++ {
		dir := got[i+1].Translation.Sub(got[i-1].Translation).Normalize()
		assertNear(t, got[i].AxisX(), dir, 1e-9)
	}
	assertNear(t, got[0].AxisX(), got[1].Translation.Sub(got[0].Translation).Normalize(), 1e-9)
}

func TestProjectArrayAlignOnTangentDegenerate(t *testing.T) {
	// The direction of travel is parallel to the up vector, and coincident
	// knots have no direction at all. Both keep the interpolated rotation.
	for _, knots := range [][]Transform{
		{knotAt(0, 0, 0), knotAt(0, 10, 0)},
		{knotAt(1, 1, 1), knotAt(1, 1, 1)},
	} {
		c := NewCurve(0, knots...)
		c.AlignOnTangent = true
		for _, tr := range c.ProjectArray(4, 0, 1) {
			if !tr.ApproxEqual(Translation(tr.Translation), 1e-12) {
				t.Errorf("got %s, want unrotated transform", tr)
			}
		}
	}
}

func TestProjectArrayParallel(t *testing.T) {
	c := NewCurve(2, knotAt(0, 0, 0), knotAt(3, 4, 0), knotAt(3, 4, 7), knotAt(-1, 0, 2))
	c.AlignOnTangent = true
	want := c.ProjectArray(500, 0, 1)

	oldThreshold, oldThreads := ThreadingThreshold, NumThreads
	t.Cleanup(func() {
		ThreadingThreshold, NumThreads = oldThreshold, oldThreads
	})
	ThreadingThreshold = 1
	for _, threads := range []int{2, 3, 7, 64} {
		NumThreads = threads
		diff(t, want, c.ProjectArray(500, 0, 1))
	}
}

func TestParallelFor(t *testing.T) {
	oldThreshold, oldThreads := ThreadingThreshold, NumThreads
	t.Cleanup(func() {
		ThreadingThreshold, NumThreads = oldThreshold, oldThreads
	})
	ThreadingThreshold = 1
	NumThreads = 4
	for _, n := range []int{0, 1, 3, 4, 5, 1000} {
		seen := make([]int, n)
		parallelFor(n, func(i int) { seen[i]++ })
		for i, v := range seen {
			if v != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}
}

func TestParallelForLimit(t *testing.T) {
	oldThreshold, oldThreads := ThreadingThreshold, NumThreads
	t.Cleanup(func() {
		ThreadingThreshold, NumThreads = oldThreshold, oldThreads
	})
	ThreadingThreshold = 1
	NumThreads = 3
	var active, peak atomic.Int32
	var total atomic.Int32
	parallelFor(500, func(i int) {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Microsecond)
		total.Add(1)
		active.Add(-1)
	})
	if got := total.Load(); got != 500 {
		t.Errorf("got %d calls, want 500", got)
	}
	if got := peak.Load(); got > 3 {
		t.Errorf("%d calls ran at once, want at most 3", got)
	}
}

func BenchmarkProjectArray(b *testing.B) {
	c := NewCurve(2, knotAt(0, 0, 0), knotAt(3, 4, 0), knotAt(3, 4, 7), knotAt(-1, 0, 2))
	for _, n := range []int{16, 256, 4096} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for range b.N {
				c.ProjectArray(n, 0, 1)
			}
		})
	}
}
