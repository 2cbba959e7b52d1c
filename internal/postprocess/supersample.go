// Package postprocess resizes rendered frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample filters a supersampled frame down to w x h.
// Rendered frames are fully opaque, so no alpha premultiplication is needed.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() <= w && b.Dy() <= h) {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	// CatmullRom approximates Lanczos
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Upscale enlarges img by an integer factor, keeping cell edges hard.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
