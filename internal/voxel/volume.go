// Package voxel implements axis-aligned voxel volumes: a bounding box, a dense
// occupancy bitfield and a fill color. One cell is one world unit.
package voxel

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"voxcast/internal/color"
	"voxcast/internal/mathutil"
)

var (
	// ErrInvalidSize is returned when a volume side is not positive.
	ErrInvalidSize = errors.New("voxel: all sides must be greater than 0")
	// ErrInvalidRect is returned when a fill rectangle has from >= to on some axis
	// or reaches outside the grid.
	ErrInvalidRect = errors.New("voxel: invalid fill rectangle")
	// ErrSizeMismatch is returned when two volumes with different grids are combined.
	ErrSizeMismatch = errors.New("voxel: grid sizes differ")
)

// Volume is an axis-aligned box of size[0]*size[1]*size[2] cells.
// Cell (x,y,z) lives at bit x + y*size.x + z*size.x*size.y.
type Volume struct {
	size   [3]int16
	bounds [2]mathutil.Vec3
	cells  *bitset.BitSet
	color  color.Color
}

// New creates an empty volume centered at center.
func New(center mathutil.Vec3, size [3]int16, c color.Color) (*Volume, error) {
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, size)
	}
	half := mathutil.Vec3{float32(size[0]), float32(size[1]), float32(size[2])}.Div(2)
	n := int(size[0]) * int(size[1]) * int(size[2])
	return &Volume{
		size:   size,
		bounds: [2]mathutil.Vec3{center.Sub(half), center.Add(half)},
		cells:  bitset.New(uint(n)),
		color:  c,
	}, nil
}

// MustNew is New for literal scenes and tests; it panics on invalid sizes.
func MustNew(center mathutil.Vec3, size [3]int16, c color.Color) *Volume {
	v, err := New(center, size, c)
	if err != nil {
		panic(err)
	}
	return v
}

// Size returns the grid dimensions.
func (v *Volume) Size() [3]int {
	return [3]int{int(v.size[0]), int(v.size[1]), int(v.size[2])}
}

// Bounds returns the min and max corners.
func (v *Volume) Bounds() [2]mathutil.Vec3 { return v.bounds }

// Center returns the midpoint of the bounds.
func (v *Volume) Center() mathutil.Vec3 {
	return v.bounds[0].Add(v.bounds[1]).Scale(0.5)
}

// Color returns the fill color of every occupied cell.
func (v *Volume) Color() color.Color { return v.color }

// Len is the total number of cells.
func (v *Volume) Len() int {
	return int(v.size[0]) * int(v.size[1]) * int(v.size[2])
}

func (v *Volume) index(x, y, z int) uint {
	sx, sy := int(v.size[0]), int(v.size[1])
	return uint(x + y*sx + z*sx*sy)
}

func (v *Volume) inRange(x, y, z int) bool {
	return x >= 0 && x < int(v.size[0]) &&
		y >= 0 && y < int(v.size[1]) &&
		z >= 0 && z < int(v.size[2])
}

// Occupied reports whether cell (x,y,z) is set. Cells outside the grid are empty.
func (v *Volume) Occupied(x, y, z int) bool {
	if !v.inRange(x, y, z) {
		return false
	}
	return v.cells.Test(v.index(x, y, z))
}

// Count returns the number of occupied cells.
func (v *Volume) Count() int {
	return int(v.cells.Count())
}

// FillWith sets every cell to val.
func (v *Volume) FillWith(val bool) {
	v.cells.ClearAll()
	if val {
		v.cells.FlipRange(0, uint(v.Len()))
	}
}

// FillRect sets every cell in [from, to) to val. from must be strictly less
// than to on every axis and the box must lie inside the grid.
func (v *Volume) FillRect(from, to [3]int, val bool) error {
	for i := 0; i < 3; i++ {
		if from[i] >= to[i] {
			return fmt.Errorf("%w: from %v must be less than to %v", ErrInvalidRect, from, to)
		}
		if from[i] < 0 || to[i] > int(v.size[i]) {
			return fmt.Errorf("%w: %v..%v outside grid %v", ErrInvalidRect, from, to, v.size)
		}
	}
	for z := from[2]; z < to[2]; z++ {
		for y := from[1]; y < to[1]; y++ {
			start := v.index(from[0], y, z)
			end := start + uint(to[0]-from[0])
			for i := start; i < end; i++ {
				v.cells.SetTo(i, val)
			}
		}
	}
	return nil
}

// Merge sets every cell that is occupied in o. Both grids must have the same size.
func (v *Volume) Merge(o *Volume) error {
	if v.size != o.size {
		return fmt.Errorf("%w: merge %v into %v", ErrSizeMismatch, o.size, v.size)
	}
	v.cells.InPlaceUnion(o.cells)
	return nil
}

// ForEachOccupied calls fn for every set cell in index order.
func (v *Volume) ForEachOccupied(fn func(x, y, z int)) {
	sx, sy := uint(v.size[0]), uint(v.size[1])
	for i, ok := v.cells.NextSet(0); ok; i, ok = v.cells.NextSet(i + 1) {
		fn(int(i%sx), int(i/sx%sy), int(i/(sx*sy)))
	}
}
