package voxel

import "voxcast/internal/ray"

// Kind tags an Intersection.
type Kind uint8

const (
	// None means the box is missed or lies behind the ray.
	None Kind = iota
	// Inside means the ray origin is strictly inside the box.
	Inside
	// Outside means the ray enters the box at a positive distance.
	Outside
)

func (k Kind) String() string {
	switch k {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	}
	return "none"
}

// Intersection is the result of a bounding-box test. The distance is only
// carried by Outside results.
type Intersection struct {
	kind Kind
	dist float32
}

// Kind returns the variant.
func (i Intersection) Kind() Kind { return i.kind }

// Distance returns the entry distance of an Outside result.
func (i Intersection) Distance() (float32, bool) {
	return i.dist, i.kind == Outside
}

// Entry returns the distance the walk starts from: 0 for Inside, the entry
// distance for Outside.
func (i Intersection) Entry() float32 { return i.dist }

func miss() Intersection             { return Intersection{} }
func inside() Intersection           { return Intersection{kind: Inside} }
func outside(t float32) Intersection { return Intersection{kind: Outside, dist: t} }

// Intersect runs the slab test against the volume bounds.
//
// The far distance is narrowed by the Y slab but not by the Z slab: only the
// entry distance is consumed, so tmax is not valid after the Z step.
func (v *Volume) Intersect(r ray.Ray) Intersection {
	o := r.Origin
	b := &v.bounds
	if o[0] > b[0][0] && o[0] < b[1][0] &&
		o[1] > b[0][1] && o[1] < b[1][1] &&
		o[2] > b[0][2] && o[2] < b[1][2] {
		return inside()
	}

	tmin := (b[r.Sign[0]][0] - o[0]) * r.InvDir[0]
	tmax := (b[r.InvSign[0]][0] - o[0]) * r.InvDir[0]

	tymin := (b[r.Sign[1]][1] - o[1]) * r.InvDir[1]
	tymax := (b[r.InvSign[1]][1] - o[1]) * r.InvDir[1]

	if tmin > tymax || tymin > tmax {
		return miss()
	}
	if tymin > tmin {
		tmin = tymin
	}
	if tymax < tmax {
		tmax = tymax
	}

	tzmin := (b[r.Sign[2]][2] - o[2]) * r.InvDir[2]
	tzmax := (b[r.InvSign[2]][2] - o[2]) * r.InvDir[2]

	if tmin > tzmax || tzmin > tmax {
		return miss()
	}
	if tzmin > tmin {
		tmin = tzmin
	}

	if tmin <= 0 {
		return miss()
	}
	return outside(tmin)
}
