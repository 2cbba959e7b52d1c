package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chewxy/math32"
)

// Config holds the scene description and render settings.
type Config struct {
	// Paths
	BaseDir string `json:"-"`
	Output  string `json:"output"`
	Format  string `json:"format"`

	// Render settings. Supersample renders at N times the size and filters
	// back down; Scale then enlarges the result with nearest-neighbour.
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Background  string `json:"background"`

	// Camera
	Camera CameraConfig `json:"camera"`
	FOVDeg float32      `json:"fov_deg"`

	// Orbit sequence; Frames == 0 renders a single image.
	Frames      int     `json:"frames"`
	OrbitRadius float32 `json:"orbit_radius"`

	Volumes []VolumeConfig `json:"volumes"`
}

// CameraConfig places the camera. Angles are in degrees.
type CameraConfig struct {
	Position [3]float32 `json:"position"`
	YawDeg   float32    `json:"yaw_deg"`
	PitchDeg float32    `json:"pitch_deg"`
}

// VolumeConfig describes one voxel volume and how its cells are filled.
// Fill runs first, then Snapshot, Heightmap and Rects in that order.
type VolumeConfig struct {
	Name      string       `json:"name"`
	Center    [3]float32   `json:"center"`
	Size      [3]int16     `json:"size"`
	Color     string       `json:"color"`
	Fill      bool         `json:"fill"`
	Snapshot  string       `json:"snapshot"`
	Heightmap string       `json:"heightmap"`
	Rects     []RectConfig `json:"rects"`
}

// RectConfig fills [From, To) with occupied cells, or clears them when Clear is set.
type RectConfig struct {
	From  [3]int `json:"from"`
	To    [3]int `json:"to"`
	Clear bool   `json:"clear"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	return cfg, nil
}

// Default is the reference scene: one fully filled green 20x10x20 volume at
// the origin seen from (0,0,40).
func Default() Config {
	return Config{
		Camera: CameraConfig{Position: [3]float32{0, 0, 40}},
		Volumes: []VolumeConfig{{
			Name:  "demo",
			Size:  [3]int16{20, 10, 20},
			Color: "green",
			Rects: []RectConfig{{From: [3]int{0, 0, 0}, To: [3]int{20, 10, 20}}},
		}},
	}
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}

	// Resolve relative paths against the config file directory
	for i := range c.Volumes {
		c.Volumes[i].Snapshot = c.resolvePath(c.Volumes[i].Snapshot)
		c.Volumes[i].Heightmap = c.resolvePath(c.Volumes[i].Heightmap)
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOVDeg <= 0 || c.FOVDeg >= 180 {
		c.FOVDeg = 45
	}
	if c.Background == "" {
		c.Background = "black"
	}
	if c.Output == "" {
		if c.Frames > 0 {
			c.Output = "frames"
		} else {
			c.Output = "render.webp"
		}
	}
	if c.OrbitRadius <= 0 {
		c.OrbitRadius = c.Camera.distance()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Format      string
	Width       int
	Height      int
	Scale       int
	Supersample int
	Workers     int
	Frames      int
	Background  string
}

func (c *Config) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// distance is the horizontal distance of the camera from the Y axis.
func (cc CameraConfig) distance() float32 {
	x, z := cc.Position[0], cc.Position[2]
	d := math32.Sqrt(x*x + z*z)
	if d == 0 {
		return 40
	}
	return d
}
