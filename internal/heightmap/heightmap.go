// Package heightmap fills voxel volumes from grayscale images: each pixel is
// one (x, z) column and its luminance sets the column height.
package heightmap

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"voxcast/internal/imageio"
	"voxcast/internal/voxel"
)

// Load reads an image file and converts it to grayscale.
func Load(path string) (*image.Gray, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	return toGray(img), nil
}

// toGray converts any image to Gray, keeping its bounds.
func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	dst := image.NewGray(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// Resample scales g to w x h. Image rows map to Z, columns to X.
func Resample(g *image.Gray, w, h int) *image.Gray {
	if g.Bounds().Dx() == w && g.Bounds().Dy() == h {
		return g
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), g, g.Bounds(), xdraw.Src, nil)
	return dst
}

// Apply sets, for every column, the cells from y=0 up to the height encoded
// by the pixel (0 = empty column, 255 = full height). It only adds cells.
func Apply(v *voxel.Volume, g *image.Gray) error {
	size := v.Size()
	hm := Resample(g, size[0], size[2])
	b := hm.Bounds()
	for z := 0; z < size[2]; z++ {
		for x := 0; x < size[0]; x++ {
			lum := int(hm.GrayAt(b.Min.X+x, b.Min.Y+z).Y)
			h := (lum*size[1] + 127) / 255
			if h <= 0 {
				continue
			}
			if err := v.FillRect([3]int{x, 0, z}, [3]int{x + 1, h, z + 1}, true); err != nil {
				return fmt.Errorf("heightmap: column %d,%d: %w", x, z, err)
			}
		}
	}
	return nil
}
