package raster

import (
	"bytes"
	"testing"

	"voxcast/internal/camera"
	"voxcast/internal/color"
	"voxcast/internal/mathutil"
	"voxcast/internal/ray"
	"voxcast/internal/voxel"
)

func demoScene(t *testing.T) (*Renderer, camera.Camera) {
	t.Helper()
	v := voxel.MustNew(mathutil.Vec3{}, [3]int16{20, 10, 20}, color.Green)
	if err := v.FillRect([3]int{0, 0, 0}, [3]int{20, 10, 20}, true); err != nil {
		t.Fatal(err)
	}
	cam := camera.Default()
	cam.Position = mathutil.Vec3{0, 0, 40}
	return &Renderer{Volumes: []*voxel.Volume{v}, Background: color.Blue}, cam
}

func pixel(fb *FrameBuffer, x, y int) [4]uint8 {
	i := fb.Offset(x, y)
	return [4]uint8{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

func quad(c color.Color) [4]uint8 {
	r, g, b := c.Bytes()
	return [4]uint8{r, g, b, 255}
}

func TestRenderDemoScene(t *testing.T) {
	r, cam := demoScene(t)
	fb := NewFrameBuffer(400, 300)
	r.Render(fb, cam)

	if got := pixel(fb, 200, 150); got != quad(color.Green) {
		t.Fatalf("center pixel = %v, want green %v", got, quad(color.Green))
	}
	for _, c := range [][2]int{{0, 0}, {399, 0}, {0, 299}, {399, 299}} {
		if got := pixel(fb, c[0], c[1]); got != quad(color.Blue) {
			t.Fatalf("corner %v = %v, want background %v", c, got, quad(color.Blue))
		}
	}
	for i := 3; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d = %d", i, fb.Pix[i])
		}
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	r, cam := demoScene(t)
	cam.Yaw = 0.2
	cam.Pitch = -0.1
	serial := NewFrameBuffer(160, 90)
	r.Render(serial, cam)
	for _, workers := range []int{0, 1, 3, 8} {
		par := NewFrameBuffer(160, 90)
		r.RenderParallel(par, cam, workers)
		if !bytes.Equal(serial.Pix, par.Pix) {
			t.Fatalf("workers=%d: parallel output differs from serial", workers)
		}
	}
}

func TestNearestPicksClosest(t *testing.T) {
	far := voxel.MustNew(mathutil.Vec3{0, 0, -20}, [3]int16{4, 4, 4}, color.Red)
	near := voxel.MustNew(mathutil.Vec3{0, 0, 0}, [3]int16{4, 4, 4}, color.Yellow)
	far.FillWith(true)
	near.FillWith(true)
	r := &Renderer{Volumes: []*voxel.Volume{far, near}, Background: color.Black}

	rr := ray.New(mathutil.Vec3{0.5, 0.5, 10}, mathutil.Vec3{0, 0, -1})
	v, hit := r.Nearest(rr)
	if v != near {
		t.Fatal("expected the nearer volume")
	}
	if d, ok := hit.Distance(); !ok || d != 8 {
		t.Fatalf("distance = %v, %v; want 8", d, ok)
	}
	if c := r.Shade(rr); c != color.Yellow {
		t.Fatalf("Shade = %v, want yellow", c)
	}
}

func TestNearestInsideShortCircuits(t *testing.T) {
	outside := voxel.MustNew(mathutil.Vec3{0, 0, -3}, [3]int16{2, 2, 2}, color.Red)
	around := voxel.MustNew(mathutil.Vec3{0, 0, 0}, [3]int16{40, 40, 40}, color.Cyan)
	r := &Renderer{Volumes: []*voxel.Volume{outside, around}, Background: color.Black}

	rr := ray.New(mathutil.Vec3{0.5, 0.5, 0.5}, mathutil.Vec3{0, 0, -1})
	v, hit := r.Nearest(rr)
	if v != around || hit.Kind() != voxel.Inside {
		t.Fatalf("got kind %v, want the enclosing volume", hit.Kind())
	}
	// enclosing volume is empty: the walk leaves it and the background shows
	if c := r.Shade(rr); c != color.Black {
		t.Fatalf("Shade = %v, want background", c)
	}
}

func TestShadeMissIsBackground(t *testing.T) {
	r := &Renderer{Background: color.Magenta}
	if c := r.Shade(ray.New(mathutil.Vec3{}, mathutil.Vec3{0, 0, -1})); c != color.Magenta {
		t.Fatalf("empty scene Shade = %v", c)
	}
}

func TestFrameBufferImage(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	color.Red.WriteRGBA8(fb.Pix, fb.Offset(2, 1))
	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if c := img.NRGBAAt(2, 1); c.R != 255 || c.G != 0 || c.A != 255 {
		t.Fatalf("pixel = %+v", c)
	}
	fb.Resize(5, 5)
	if len(fb.Pix) != 100 {
		t.Fatalf("resized len = %d", len(fb.Pix))
	}
}

func BenchmarkRenderDemo(b *testing.B) {
	v := voxel.MustNew(mathutil.Vec3{}, [3]int16{20, 10, 20}, color.Green)
	v.FillWith(true)
	cam := camera.Default()
	cam.Position = mathutil.Vec3{0, 0, 40}
	r := &Renderer{Volumes: []*voxel.Volume{v}}
	fb := NewFrameBuffer(400, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(fb, cam)
	}
}
