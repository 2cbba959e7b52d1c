package voxel

import (
	"github.com/chewxy/math32"

	"voxcast/internal/color"
	"voxcast/internal/ray"
)

// Walk steps cell by cell from the point at distance t along r until it finds
// an occupied cell or leaves the grid. t is 0 for Inside results and the slab
// entry distance for Outside results.
func (v *Volume) Walk(r ray.Ray, t float32) (color.Color, bool) {
	p := r.At(t).Sub(v.bounds[0])

	var (
		cell   [3]int
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	for i := 0; i < 3; i++ {
		n := int(v.size[i])
		d := r.Direction[i]

		f := math32.Floor(p[i])
		c := int(f)
		if d < 0 && p[i] == f {
			// on a boundary heading down: we are entering the lower cell
			c--
		}
		// entry points sit on the box surface and may be off by an ulp
		if c < 0 {
			c = 0
		} else if c >= n {
			c = n - 1
		}
		cell[i] = c

		switch {
		case d > 0:
			step[i] = 1
			tDelta[i] = 1 / d
			tMax[i] = (float32(c+1) - p[i]) / d
		case d < 0:
			step[i] = -1
			tDelta[i] = -1 / d
			tMax[i] = (float32(c) - p[i]) / d
		default:
			tDelta[i] = ray.Huge
			tMax[i] = ray.Huge
		}
	}

	for {
		if v.cells.Test(v.index(cell[0], cell[1], cell[2])) {
			return v.color, true
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		if step[axis] == 0 {
			// zero direction: nothing left to visit
			return 0, false
		}

		cell[axis] += step[axis]
		if cell[axis] < 0 || cell[axis] >= int(v.size[axis]) {
			return 0, false
		}
		tMax[axis] += tDelta[axis]
	}
}

// Trace is Intersect followed by Walk on a hit.
func (v *Volume) Trace(r ray.Ray) (color.Color, bool) {
	hit := v.Intersect(r)
	if hit.Kind() == None {
		return 0, false
	}
	return v.Walk(r, hit.Entry())
}
