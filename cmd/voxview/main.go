package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"voxcast/internal/camera"
	"voxcast/internal/config"
	"voxcast/internal/heightmap"
	"voxcast/internal/raster"
	"voxcast/internal/scene"
)

const (
	moveSpeed = 1
	rotSpeed  = 0.1
)

func main() {
	configFile := flag.String("config", "", "Path to scene JSON file (default: built-in demo scene)")
	width := flag.Int("width", 0, "Viewport width (default: 400)")
	height := flag.Int("height", 0, "Viewport height (default: 300)")
	workers := flag.Int("workers", 0, "Render workers per frame (default: NumCPU)")

	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Workers: *workers})

	sc, err := scene.Build(cfg, heightmap.NewCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	g := &viewer{
		r:       sc.Renderer(),
		cam:     sc.Camera,
		fb:      raster.NewFrameBuffer(cfg.Width, cfg.Height),
		workers: cfg.Workers,
	}
	ebiten.SetWindowTitle("voxview")
	ebiten.SetWindowSize(cfg.Width*2, cfg.Height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type viewer struct {
	r       *raster.Renderer
	cam     camera.Camera
	fb      *raster.FrameBuffer
	img     *ebiten.Image
	workers int
}

func (g *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.cam = steer(g.cam, ebiten.IsKeyPressed)
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.r.RenderParallel(g.fb, g.cam, g.workers)
	g.img.WritePixels(g.fb.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}

// steer applies one tick of held keys. Movement is along world axes.
func steer(c camera.Camera, pressed func(ebiten.Key) bool) camera.Camera {
	move := []struct {
		key   ebiten.Key
		axis  int
		delta float32
	}{
		{ebiten.KeyW, 2, -moveSpeed},
		{ebiten.KeyS, 2, moveSpeed},
		{ebiten.KeyA, 0, -moveSpeed},
		{ebiten.KeyD, 0, moveSpeed},
		{ebiten.KeyE, 1, moveSpeed},
		{ebiten.KeyQ, 1, -moveSpeed},
	}
	for _, m := range move {
		if pressed(m.key) {
			c.Position[m.axis] += m.delta
		}
	}
	if pressed(ebiten.KeyI) {
		c.Pitch += rotSpeed
	}
	if pressed(ebiten.KeyK) {
		c.Pitch -= rotSpeed
	}
	if pressed(ebiten.KeyJ) {
		c.Yaw += rotSpeed
	}
	if pressed(ebiten.KeyL) {
		c.Yaw -= rotSpeed
	}
	return c
}
