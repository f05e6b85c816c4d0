package curve3

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform describes a rigid transform with non-uniform scale.
//
// Points are transformed by scaling, then rotating, then translating:
//
//	p' = Rotation * (Scale ⊙ p) + Translation
//
// The zero value is not the identity transform, as its rotation and scale are
// zero. Use [Identity] instead.
type Transform struct {
	Translation mgl64.Vec3
	// Rotation is expected to be a unit quaternion.
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Identity returns the identity transform: no translation, no rotation and a
// scale of one on every axis.
func Identity() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Translation returns an unrotated, unscaled transform positioned at p.
func Translation(p mgl64.Vec3) Transform {
	t := Identity()
	t.Translation = p
	return t
}

// FromAxisAngle returns the rotation of angle radians about axis. The axis
// doesn't have to be normalized.
//
// Rotations are right-handed: rotating by π/2 about +Y maps +X onto -Z.
func FromAxisAngle(axis mgl64.Vec3, angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, axis.Normalize())
}

func (tr Transform) String() string {
	return fmt.Sprintf("{T: %s, R: %g∠%s, S: %s}",
		fmtVec(tr.Translation), tr.Rotation.W, fmtVec(tr.Rotation.V), fmtVec(tr.Scale))
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v[0], v[1], v[2])
}

// AxisX returns the transform's local X axis in world space. Scale is not
// applied, so the result has unit length.
func (tr Transform) AxisX() mgl64.Vec3 {
	return tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// AxisY returns the transform's local Y axis in world space. See
// [Transform.AxisX].
func (tr Transform) AxisY() mgl64.Vec3 {
	return tr.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}

// AxisZ returns the transform's local Z axis in world space. See
// [Transform.AxisX].
func (tr Transform) AxisZ() mgl64.Vec3 {
	return tr.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// TransformVector maps a direction from local space into world space. It
// applies scale and rotation, but not translation.
func (tr Transform) TransformVector(v mgl64.Vec3) mgl64.Vec3 {
	return tr.Rotation.Rotate(mulComponents(v, tr.Scale))
}

// TransformPoint maps a point from local space into world space.
func (tr Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return tr.TransformVector(p).Add(tr.Translation)
}

// Translate returns a copy of the transform moved by v in world space.
func (tr Transform) Translate(v mgl64.Vec3) Transform {
	tr.Translation = tr.Translation.Add(v)
	return tr
}

// Lerp interpolates between two transforms. Translation and scale are
// interpolated linearly, rotation spherically.
//
// Values of t outside of [0, 1] extrapolate.
func (tr Transform) Lerp(o Transform, t float64) Transform {
	return Transform{
		Translation: lerp(tr.Translation, o.Translation, t),
		Rotation:    slerp(tr.Rotation, o.Rotation, t),
		Scale:       lerp(tr.Scale, o.Scale, t),
	}
}

// ApproxEqual reports whether two transforms are equal within epsilon,
// component-wise. Rotations q and -q describe the same orientation and
// compare equal.
func (tr Transform) ApproxEqual(o Transform, epsilon float64) bool {
	if !vecApproxEqual(tr.Translation, o.Translation, epsilon) ||
		!vecApproxEqual(tr.Scale, o.Scale, epsilon) {
		return false
	}
	q := o.Rotation
	if tr.Rotation.Dot(q) < 0 {
		q = q.Scale(-1)
	}
	return math.Abs(tr.Rotation.W-q.W) <= epsilon && vecApproxEqual(tr.Rotation.V, q.V, epsilon)
}

// IsNaN reports whether any component of the transform is NaN.
func (tr Transform) IsNaN() bool {
	return vecIsNaN(tr.Translation) || vecIsNaN(tr.Scale) ||
		vecIsNaN(tr.Rotation.V) || math.IsNaN(tr.Rotation.W)
}

// IsInf reports whether any component of the transform is infinite.
func (tr Transform) IsInf() bool {
	return vecIsInf(tr.Translation) || vecIsInf(tr.Scale) ||
		vecIsInf(tr.Rotation.V) || math.IsInf(tr.Rotation.W, 0)
}

// lerp linearly interpolates between two vectors. It is written so that
// t = 0 and t = 1 reproduce a and b exactly.
func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	mt := 1.0 - t
	return mgl64.Vec3{
		a[0]*mt + b[0]*t,
		a[1]*mt + b[1]*t,
		a[2]*mt + b[2]*t,
	}
}

// slerp spherically interpolates along the shorter arc between a and b.
func slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

func mulComponents(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func vecApproxEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return math.Abs(a[0]-b[0]) <= epsilon &&
		math.Abs(a[1]-b[1]) <= epsilon &&
		math.Abs(a[2]-b[2]) <= epsilon
}

func vecIsNaN(v mgl64.Vec3) bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

func vecIsInf(v mgl64.Vec3) bool {
	return math.IsInf(v[0], 0) || math.IsInf(v[1], 0) || math.IsInf(v[2], 0)
}

// forwardCorrection turns a rotation facing +Z into one facing +X. Curves
// advance along their knots' local X axis.
var forwardCorrection = mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 1, 0})

// faceRotation returns the rotation whose local +Z axis points along dir and
// whose local +Y axis is as close to up as possible. It reports false if dir
// has no length or is parallel to up, in which case no such rotation is
// defined.
func faceRotation(dir, up mgl64.Vec3) (mgl64.Quat, bool) {
	const epsilon = 1e-12
	if lenSq(dir) <= epsilon {
		return mgl64.Quat{}, false
	}
	z := dir.Normalize()
	x := up.Cross(z)
	if lenSq(x) <= epsilon {
		return mgl64.Quat{}, false
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize(), true
}

// lenSq returns the squared length of v.
func lenSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}
