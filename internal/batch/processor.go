// Package batch renders orbit sequences: the camera circles the Y axis and
// each frame is written to its own image file.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"

	"voxcast/internal/camera"
	"voxcast/internal/imageio"
	"voxcast/internal/mathutil"
	"voxcast/internal/postprocess"
	"voxcast/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Renderer    *raster.Renderer
	Camera      camera.Camera
	OutputDir   string
	Format      imageio.Format
	Width       int
	Height      int
	Supersample int
	Scale       int
	Frames      int
	Radius      float32
	Workers     int
	// Progress, when non-zero, prints a status line at this interval.
	Progress time.Duration
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string
	Camera  camera.Camera
	Success bool
	Error   string
}

// OrbitCamera returns the camera for frame i of n. Frame 0 is base moved
// onto the circle of the given radius; each frame turns 360/n degrees
// further around the Y axis and yaws by the same amount.
func OrbitCamera(base camera.Camera, radius float32, i, n int) camera.Camera {
	start := math32.Atan2(base.Position[0], base.Position[2])
	step := 2 * math32.Pi * float32(i) / float32(n)
	a := start + step

	c := base
	c.Position = mathutil.Vec3{radius * math32.Sin(a), base.Position[1], radius * math32.Cos(a)}
	c.Yaw = base.Yaw + step
	return c
}

// FrameName is the file name of frame i.
func FrameName(i int, f imageio.Format) string {
	return fmt.Sprintf("frame_%04d%s", i, f.Ext())
}

// Run renders all frames using a worker pool. Each worker renders whole
// frames single-threaded; the renderer is shared read-only.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range frameChan {
				results[i] = renderFrame(cfg, i)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, i int) Result {
	cam := OrbitCamera(cfg.Camera, cfg.Radius, i, cfg.Frames)
	name := FrameName(i, cfg.Format)
	res := Result{Frame: i, Image: name, Camera: cam}

	ss := max(cfg.Supersample, 1)
	fb := raster.NewFrameBuffer(cfg.Width*ss, cfg.Height*ss)
	cfg.Renderer.Render(fb, cam)

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	img = postprocess.Upscale(img, cfg.Scale)

	if err := imageio.Save(filepath.Join(cfg.OutputDir, name), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
