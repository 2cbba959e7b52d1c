package voxel

import "fmt"

// Bitmap returns the occupancy as ceil(Len/8) bytes, cell i at bit i&7 of
// byte i>>3.
func (v *Volume) Bitmap() []byte {
	out := make([]byte, (v.Len()+7)/8)
	for i, ok := v.cells.NextSet(0); ok; i, ok = v.cells.NextSet(i + 1) {
		out[i>>3] |= 1 << (i & 7)
	}
	return out
}

// SetBitmap replaces the occupancy with a bitmap produced by Bitmap.
func (v *Volume) SetBitmap(b []byte) error {
	n := v.Len()
	if len(b) != (n+7)/8 {
		return fmt.Errorf("voxel: bitmap is %d bytes, want %d", len(b), (n+7)/8)
	}
	v.cells.ClearAll()
	for i := 0; i < n; i++ {
		if b[i>>3]&(1<<(i&7)) != 0 {
			v.cells.Set(uint(i))
		}
	}
	return nil
}
