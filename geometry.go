package grapple

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Normalize scales v to unit length. The zero vector is returned unchanged.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// AngularDelta compares the pitch (x) and yaw (y) components of two angle
// triples and returns the larger shortest-arc difference, in degrees [0, 180].
// It is a coarse facing check, not a true 3D angle.
func AngularDelta(a, b mgl32.Vec3) float32 {
	return float32(math.Max(arcDelta(a[0], b[0]), arcDelta(a[1], b[1])))
}

func arcDelta(a, b float32) float64 {
	d := math.Mod(math.Abs(float64(a)-float64(b)), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// RightVector derives the horizontal lateral unit vector from the yaw of a
// pitch/yaw/roll triple. Pitch and roll are ignored.
func RightVector(view mgl32.Vec3) mgl32.Vec3 {
	angleRad := float64(mgl32.DegToRad(view[1] - 90))
	return mgl32.Vec3{float32(math.Cos(angleRad)), float32(math.Sin(angleRad)), 0}
}

// AimAngles returns the pitch/yaw/roll triple that looks along dir, using the
// host convention where positive pitch looks down.
func AimAngles(dir mgl32.Vec3) mgl32.Vec3 {
	if dir[0] == 0 && dir[1] == 0 && dir[2] == 0 {
		return mgl32.Vec3{}
	}
	yaw := math.Atan2(float64(dir[1]), float64(dir[0]))
	pitch := -math.Atan2(float64(dir[2]), math.Hypot(float64(dir[0]), float64(dir[1])))
	return mgl32.Vec3{mgl32.RadToDeg(float32(pitch)), mgl32.RadToDeg(float32(yaw)), 0}
}
