package mathutil

import "github.com/chewxy/math32"

// RotateX rotates v around the X axis (right-handed). Angle in radians.
//
//	| 1  0   0 |
//	| 0  c  -s |
//	| 0  s   c |
func (v Vec3) RotateX(a float32) Vec3 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Vec3{
		v[0],
		v[1]*c - v[2]*s,
		v[1]*s + v[2]*c,
	}
}

// RotateY rotates v around the Y axis (right-handed).
//
//	|  c  0  s |
//	|  0  1  0 |
//	| -s  0  c |
func (v Vec3) RotateY(a float32) Vec3 {
	s, c := math32.Sin(a), math32.Cos(a)
	return Vec3{
		v[0]*c + v[2]*s,
		v[1],
		-v[0]*s + v[2]*c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float32) float32 {
	return r * 180 / math32.Pi
}
