package raster

import "image"

// FrameBuffer holds the rendering target as one flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, row-major, len = W*H*4
}

// NewFrameBuffer allocates a zeroed buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Offset returns the byte offset of pixel (x, y).
func (fb *FrameBuffer) Offset(x, y int) int {
	return (y*fb.Width + x) * 4
}

// Resize reallocates the buffer when the dimensions change.
func (fb *FrameBuffer) Resize(w, h int) {
	if w == fb.Width && h == fb.Height {
		return
	}
	fb.Width, fb.Height = w, h
	fb.Pix = make([]uint8, w*h*4)
}

// Image copies the buffer into an NRGBA image (alpha is always opaque).
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
