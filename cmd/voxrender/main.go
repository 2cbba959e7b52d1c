package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voxcast/internal/batch"
	"voxcast/internal/config"
	"voxcast/internal/heightmap"
	"voxcast/internal/imageio"
	"voxcast/internal/postprocess"
	"voxcast/internal/raster"
	"voxcast/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to scene JSON file (default: built-in demo scene)")
	output := flag.String("output", "", "Output file, or directory with -frames (default: render.webp / frames)")
	format := flag.String("format", "", "Image format: webp, png, bmp, tga (default: from output extension)")
	width := flag.Int("width", 0, "Viewport width (default: 400)")
	height := flag.Int("height", 0, "Viewport height (default: 300)")
	scale := flag.Int("scale", 0, "Integer upscale of the final image (default: 1)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	frames := flag.Int("frames", 0, "Render an orbit of N frames instead of one image")
	background := flag.String("bg", "", "Background color name or #rrggbb (default: black)")

	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:      *output,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Scale:       *scale,
		Supersample: *supersample,
		Workers:     *workers,
		Frames:      *frames,
		Background:  *background,
	})

	f, err := outputFormat(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := scene.Build(cfg, heightmap.NewCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	cells := 0
	for _, v := range sc.Volumes {
		cells += v.Count()
	}
	fmt.Printf("Volumes: %d, occupied cells: %d\n", len(sc.Volumes), cells)
	fmt.Printf("Viewport: %dx%d (ss %d, scale %d), Workers: %d\n", cfg.Width, cfg.Height, cfg.Supersample, cfg.Scale, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	if cfg.Frames > 0 {
		os.Exit(runOrbit(cfg, sc, f, start))
	}

	ss := cfg.Supersample
	img := raster.RenderImage(sc.Renderer(), sc.Camera, cfg.Width*ss, cfg.Height*ss, cfg.Workers)
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	img = postprocess.Upscale(img, cfg.Scale)

	if err := imageio.Save(cfg.Output, img, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done in %.2fs\n", time.Since(start).Seconds())
}

func runOrbit(cfg config.Config, sc *scene.Scene, f imageio.Format, start time.Time) int {
	results := batch.Run(batch.Config{
		Renderer:    sc.Renderer(),
		Camera:      sc.Camera,
		OutputDir:   cfg.Output,
		Format:      f,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Scale:       cfg.Scale,
		Frames:      cfg.Frames,
		Radius:      cfg.OrbitRadius,
		Workers:     cfg.Workers,
		Progress:    2 * time.Second,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.Output, "manifest.json")
	os.MkdirAll(cfg.Output, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// outputFormat picks the explicit format, else the output extension for a
// single image, else WebP.
func outputFormat(cfg config.Config) (imageio.Format, error) {
	if cfg.Format != "" {
		return imageio.ParseFormat(cfg.Format)
	}
	if cfg.Frames == 0 {
		if f, err := imageio.FormatFromPath(cfg.Output); err == nil {
			return f, nil
		}
	}
	return imageio.WebP, nil
}
