package heightmap

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	vcolor "voxcast/internal/color"
	"voxcast/internal/imageio"
	"voxcast/internal/mathutil"
	"voxcast/internal/voxel"
)

// ramp is a 4x2 map whose columns rise 0, 85, 170, 255.
func ramp() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, 4, 2))
	for z := 0; z < 2; z++ {
		for x := 0; x < 4; x++ {
			g.SetGray(x, z, color.Gray{Y: uint8(x * 85)})
		}
	}
	return g
}

func TestApplyColumns(t *testing.T) {
	v := voxel.MustNew(mathutil.Vec3{}, [3]int16{4, 3, 2}, vcolor.Green)
	if err := Apply(v, ramp()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for z := 0; z < 2; z++ {
		for x := 0; x < 4; x++ {
			for y := 0; y < 3; y++ {
				want := y < x // heights 0,1,2,3
				if got := v.Occupied(x, y, z); got != want {
					t.Fatalf("cell %d,%d,%d = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
	if v.Count() != 2*(0+1+2+3) {
		t.Fatalf("Count = %d", v.Count())
	}
}

func TestResample(t *testing.T) {
	g := Resample(ramp(), 8, 4)
	if g.Bounds().Dx() != 8 || g.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v", g.Bounds())
	}
	if same := Resample(g, 8, 4); same != g {
		t.Fatal("same-size resample should return the input")
	}
}

func TestLoadAndCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	if err := imageio.Save(path, ramp(), imageio.PNG); err != nil {
		t.Fatal(err)
	}
	c := NewCache()
	a, err := c.Get(path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, _ := c.Get(path)
	if a != b || c.Len() != 1 {
		t.Fatalf("cache did not reuse the decoded image (len %d)", c.Len())
	}
	if a.GrayAt(3, 1).Y != 255 {
		t.Fatalf("decoded pixel = %d", a.GrayAt(3, 1).Y)
	}

	if _, err := c.Get(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing heightmap")
	}
	if c.Len() != 2 {
		t.Fatalf("errors should be cached, len = %d", c.Len())
	}
}
