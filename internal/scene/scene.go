// Package scene turns a resolved config into volumes, a camera and a renderer.
package scene

import (
	"errors"
	"fmt"

	"voxcast/internal/camera"
	"voxcast/internal/color"
	"voxcast/internal/config"
	"voxcast/internal/heightmap"
	"voxcast/internal/mathutil"
	"voxcast/internal/raster"
	"voxcast/internal/snapshot"
	"voxcast/internal/voxel"
)

// ErrSnapshotSize is returned when a snapshot does not match the configured grid.
var ErrSnapshotSize = errors.New("scene: snapshot size does not match volume")

// Scene is everything needed to render a config.
type Scene struct {
	Volumes    []*voxel.Volume
	Names      []string
	Background color.Color
	Camera     camera.Camera
}

// Build creates the scene described by cfg. cfg should already be resolved.
// Heightmaps are loaded through hm, which may be shared between builds.
func Build(cfg config.Config, hm *heightmap.Cache) (*Scene, error) {
	bg, err := color.Parse(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: background: %w", err)
	}
	if hm == nil {
		hm = heightmap.NewCache()
	}

	s := &Scene{
		Background: bg,
		Camera:     CameraFrom(cfg),
	}
	for i, vc := range cfg.Volumes {
		name := vc.Name
		if name == "" {
			name = fmt.Sprintf("volume_%d", i)
		}
		v, err := buildVolume(vc, hm)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", name, err)
		}
		s.Volumes = append(s.Volumes, v)
		s.Names = append(s.Names, name)
	}
	return s, nil
}

// CameraFrom converts the camera section of cfg to radians.
func CameraFrom(cfg config.Config) camera.Camera {
	return camera.Camera{
		Position: mathutil.Vec3(cfg.Camera.Position),
		Yaw:      mathutil.Deg2Rad(cfg.Camera.YawDeg),
		Pitch:    mathutil.Deg2Rad(cfg.Camera.PitchDeg),
		FOV:      mathutil.Deg2Rad(cfg.FOVDeg),
	}
}

// Renderer returns a renderer over the scene volumes.
func (s *Scene) Renderer() *raster.Renderer {
	return &raster.Renderer{Volumes: s.Volumes, Background: s.Background}
}

// buildVolume applies, in order: Fill, Snapshot, Heightmap, Rects.
func buildVolume(vc config.VolumeConfig, hm *heightmap.Cache) (*voxel.Volume, error) {
	c := color.White
	if vc.Color != "" {
		var err error
		if c, err = color.Parse(vc.Color); err != nil {
			return nil, err
		}
	}

	var snap *voxel.Volume
	if vc.Snapshot != "" {
		var err error
		if snap, err = snapshot.Load(vc.Snapshot); err != nil {
			return nil, err
		}
	}

	size, center := vc.Size, mathutil.Vec3(vc.Center)
	if size == ([3]int16{}) && snap != nil {
		ss := snap.Size()
		size = [3]int16{int16(ss[0]), int16(ss[1]), int16(ss[2])}
		center = snap.Center()
		if vc.Color == "" {
			c = snap.Color()
		}
	}

	v, err := voxel.New(center, size, c)
	if err != nil {
		return nil, err
	}
	if vc.Fill {
		v.FillWith(true)
	}
	if snap != nil {
		// Snapshot cells are added to whatever Fill set.
		if err := v.Merge(snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshotSize, err)
		}
	}
	if vc.Heightmap != "" {
		g, err := hm.Get(vc.Heightmap)
		if err != nil {
			return nil, err
		}
		if err := heightmap.Apply(v, g); err != nil {
			return nil, err
		}
	}
	for _, r := range vc.Rects {
		if err := v.FillRect(r.From, r.To, !r.Clear); err != nil {
			return nil, err
		}
	}
	return v, nil
}
