// Package export converts voxel volumes into triangle meshes and glTF binaries.
package export

import (
	"voxcast/internal/voxel"
)

// Mesh is an indexed triangle list with per-vertex attributes.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Colors    [][4]float32
	Indices   []uint32
}

// Faces returns the number of quads in m.
func (m *Mesh) Faces() int { return len(m.Indices) / 6 }

type face struct {
	dir     [3]int
	normal  [3]float32
	corners [4][3]float32
}

// Corners are counter-clockwise seen from outside the cell.
var faces = [6]face{
	{[3]int{1, 0, 0}, [3]float32{1, 0, 0}, [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{[3]int{-1, 0, 0}, [3]float32{-1, 0, 0}, [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{[3]int{0, 1, 0}, [3]float32{0, 1, 0}, [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{[3]int{0, -1, 0}, [3]float32{0, -1, 0}, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{[3]int{0, 0, 1}, [3]float32{0, 0, 1}, [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{[3]int{0, 0, -1}, [3]float32{0, 0, -1}, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// BuildMesh emits one quad for every cell face whose neighbour is empty or
// outside the grid. Vertices are in world space.
func BuildMesh(v *voxel.Volume) *Mesh {
	m := &Mesh{}
	lo := v.Bounds()[0]
	r, g, b := v.Color().Bytes()
	rgba := [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}

	v.ForEachOccupied(func(x, y, z int) {
		for _, f := range faces {
			if v.Occupied(x+f.dir[0], y+f.dir[1], z+f.dir[2]) {
				continue
			}
			base := uint32(len(m.Positions))
			for _, c := range f.corners {
				m.Positions = append(m.Positions, [3]float32{
					lo[0] + float32(x) + c[0],
					lo[1] + float32(y) + c[1],
					lo[2] + float32(z) + c[2],
				})
				m.Normals = append(m.Normals, f.normal)
				m.Colors = append(m.Colors, rgba)
			}
			m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
		}
	})
	return m
}
