// Package color implements the 8-bit packed RGB color used by the voxel
// renderer. Channels are laid out RRRGGBBB: 3 bits red, 2 bits green,
// 3 bits blue.
package color

import "fmt"

const (
	redBits   = 3
	greenBits = 2
	blueBits  = 3

	redMax   = 1<<redBits - 1
	greenMax = 1<<greenBits - 1
	blueMax  = 1<<blueBits - 1

	redShift   = greenBits + blueBits
	greenShift = blueBits
)

// Color is a bit-packed RGB value.
type Color uint8

// Named colors, computed once at package initialization.
var (
	White   = FromUnitRGB(1, 1, 1)
	Black   = FromUnitRGB(0, 0, 0)
	Red     = FromUnitRGB(1, 0, 0)
	Green   = FromUnitRGB(0, 1, 0)
	Blue    = FromUnitRGB(0, 0, 1)
	Yellow  = FromUnitRGB(1, 1, 0)
	Cyan    = FromUnitRGB(0, 1, 1)
	Magenta = FromUnitRGB(1, 0, 1)
	Gray    = FromUnitRGB(0.5, 0.5, 0.5)
)

// FromUnitRGB quantizes float channels in [0,1]. Out-of-range channels clamp
// in quantized space: v > 1 maps to the channel max, v < 0 and NaN to zero.
func FromUnitRGB(r, g, b float32) Color {
	return Color(quantize(r, redMax)<<redShift | quantize(g, greenMax)<<greenShift | quantize(b, blueMax))
}

// FromByteRGB is FromUnitRGB(r/255, g/255, b/255).
func FromByteRGB(r, g, b uint8) Color {
	return FromUnitRGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

func quantize(v float32, max uint8) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v > 1:
		return max
	case v < 0:
		return 0
	}
	return uint8(v * float32(max))
}

// Red returns the red channel renormalized to [0,1].
func (c Color) Red() float32 {
	return float32(uint8(c)>>redShift) / redMax
}

// Green returns the green channel renormalized to [0,1].
func (c Color) Green() float32 {
	return float32(uint8(c)>>greenShift&greenMax) / greenMax
}

// Blue returns the blue channel renormalized to [0,1].
func (c Color) Blue() float32 {
	return float32(uint8(c)&blueMax) / blueMax
}

// Bytes returns the 8-bit channels written by WriteRGBA8 (truncated, not rounded).
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(c.Red() * 255), uint8(c.Green() * 255), uint8(c.Blue() * 255)
}

// WriteRGBA8 writes R, G, B, 255 at buf[off:off+4].
// It panics if the quad does not fit in buf.
func (c Color) WriteRGBA8(buf []byte, off int) {
	q := buf[off : off+4 : off+4]
	q[0], q[1], q[2] = c.Bytes()
	q[3] = 255
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Bytes()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

func (c Color) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
