// Package ray holds the ray representation used by the slab test and the
// voxel walk.
package ray

import (
	"math"

	"voxcast/internal/mathutil"
)

// Huge replaces 1/d when a direction component is zero. It is finite so the
// slab products stay ordered instead of producing NaN from 0*Inf.
const Huge float32 = math.MaxFloat32

// Ray is immutable after New. Sign[i] is 1 when the direction is negative on
// axis i (so bounds[Sign[i]] is the near plane), InvSign[i] is its complement.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
	InvDir    mathutil.Vec3
	Sign      [3]int
	InvSign   [3]int
}

// New precomputes the inverse direction and sign bits. The direction must
// already be normalized.
func New(origin, direction mathutil.Vec3) Ray {
	r := Ray{Origin: origin, Direction: direction}
	for i := 0; i < 3; i++ {
		if direction[i] != 0 {
			r.InvDir[i] = 1 / direction[i]
		} else {
			r.InvDir[i] = Huge
		}
		if r.InvDir[i] < 0 {
			r.Sign[i] = 1
		} else {
			r.InvSign[i] = 1
		}
	}
	return r
}

// At returns Origin + t*Direction.
func (r Ray) At(t float32) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
