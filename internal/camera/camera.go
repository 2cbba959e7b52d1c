// Package camera maps pixels to primary rays with a pinhole model.
package camera

import (
	"github.com/chewxy/math32"

	"voxcast/internal/mathutil"
	"voxcast/internal/ray"
)

// Camera is read at the start of each render pass. It looks down -Z when yaw
// and pitch are zero; pitch turns about X, then yaw about Y. Angles in radians.
type Camera struct {
	Position mathutil.Vec3
	Yaw      float32
	Pitch    float32
	FOV      float32 // vertical field of view
}

// Default is the reference camera: origin, no rotation, 45 degree field of view.
func Default() Camera {
	return Camera{FOV: mathutil.Deg2Rad(45)}
}

// Projector caches the viewport extents for one frame size.
type Projector struct {
	cam   Camera
	w, h  int
	halfW float32
	halfH float32
}

// Projector prepares ray generation for a w x h viewport.
func (c Camera) Projector(w, h int) Projector {
	halfH := math32.Tan(c.FOV / 2)
	return Projector{
		cam:   c,
		w:     w,
		h:     h,
		halfW: halfH * float32(w) / float32(h),
		halfH: halfH,
	}
}

// Ray returns the primary ray through the center of pixel (x, y).
// Pixel rows run top to bottom.
func (p Projector) Ray(x, y int) ray.Ray {
	sx := (float32(x)+0.5)/float32(p.w)*2 - 1
	sy := (float32(y)+0.5)/float32(p.h)*2 - 1
	d := mathutil.Vec3{sx * p.halfW, -sy * p.halfH, -1}.
		RotateX(p.cam.Pitch).
		RotateY(p.cam.Yaw).
		Normalize()
	return ray.New(p.cam.Position, d)
}

// RayFor is a one-off Projector(w, h).Ray(x, y).
func (c Camera) RayFor(x, y, w, h int) ray.Ray {
	return c.Projector(w, h).Ray(x, y)
}

// LookAt returns yaw and pitch pointing from the camera position at target.
func (c Camera) LookAt(target mathutil.Vec3) Camera {
	d := target.Sub(c.Position)
	flat := math32.Sqrt(d[0]*d[0] + d[2]*d[2])
	c.Yaw = math32.Atan2(-d[0], -d[2])
	c.Pitch = math32.Atan2(d[1], flat)
	return c
}
