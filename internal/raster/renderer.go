package raster

import (
	"image"
	"sync"

	"voxcast/internal/camera"
	"voxcast/internal/color"
	"voxcast/internal/ray"
	"voxcast/internal/voxel"
)

// Renderer casts one ray per pixel against a fixed set of volumes.
// Volumes must not be mutated while a pass is running.
type Renderer struct {
	Volumes    []*voxel.Volume
	Background color.Color
}

// Nearest scans all volumes and returns the closest one the ray enters.
// A volume containing the ray origin wins immediately.
func (r *Renderer) Nearest(rr ray.Ray) (*voxel.Volume, voxel.Intersection) {
	var (
		best    *voxel.Volume
		bestHit voxel.Intersection
		minDist = ray.Huge
	)
	for _, v := range r.Volumes {
		hit := v.Intersect(rr)
		switch hit.Kind() {
		case voxel.Inside:
			return v, hit
		case voxel.Outside:
			if d, _ := hit.Distance(); d < minDist {
				minDist = d
				best, bestHit = v, hit
			}
		}
	}
	return best, bestHit
}

// Shade resolves the color seen along rr: the first occupied cell of the
// nearest volume, or the background.
func (r *Renderer) Shade(rr ray.Ray) color.Color {
	v, hit := r.Nearest(rr)
	if v == nil {
		return r.Background
	}
	if c, ok := v.Walk(rr, hit.Entry()); ok {
		return c
	}
	return r.Background
}

// Render fills every pixel of fb once, left to right, top to bottom.
func (r *Renderer) Render(fb *FrameBuffer, cam camera.Camera) {
	p := cam.Projector(fb.Width, fb.Height)
	i := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r.Shade(p.Ray(x, y)).WriteRGBA8(fb.Pix, i)
			i += 4
		}
	}
}

// RenderParallel produces the same pixels as Render with rows split across
// workers. Pixels are independent, so workers share nothing but the buffer.
func (r *Renderer) RenderParallel(fb *FrameBuffer, cam camera.Camera, workers int) {
	if workers <= 1 || fb.Height < 2 {
		r.Render(fb, cam)
		return
	}
	p := cam.Projector(fb.Width, fb.Height)

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				i := fb.Offset(0, y)
				for x := 0; x < fb.Width; x++ {
					r.Shade(p.Ray(x, y)).WriteRGBA8(fb.Pix, i)
					i += 4
				}
			}
		}()
	}
	for y := 0; y < fb.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

// RenderImage renders one w x h frame to an NRGBA image.
func RenderImage(r *Renderer, cam camera.Camera, w, h, workers int) *image.NRGBA {
	fb := NewFrameBuffer(w, h)
	r.RenderParallel(fb, cam, workers)
	return fb.Image()
}
