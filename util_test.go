package curve3

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want mgl64.Vec3, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Len(); d > epsilon {
		t.Errorf("got %s, expected %s", fmtVec(got), fmtVec(want))
	}
}

// knotAt returns an unrotated, unscaled knot at (x, y, z).
func knotAt(x, y, z float64) Transform {
	return Translation(mgl64.Vec3{x, y, z})
}
