package fractal

import (
	"image"
	"image/color"
)

// PixelBuffer is a Size×Size row-major grid of RGB triples.
type PixelBuffer struct {
	Size int
	// Pix holds the pixels, three bytes per pixel, 3*Size bytes per row.
	Pix []uint8
}

func NewPixelBuffer(size int) *PixelBuffer {
	return &PixelBuffer{Size: size, Pix: make([]uint8, 3*size*size)}
}

// Stride is the number of bytes between vertically adjacent pixels.
func (b *PixelBuffer) Stride() int { return 3 * b.Size }

// Rows returns the bytes of rows [y0, y1). Slices for disjoint row ranges do
// not overlap and may be written from different goroutines.
func (b *PixelBuffer) Rows(y0, y1 int) []uint8 {
	return b.Pix[y0*b.Stride() : y1*b.Stride() : y1*b.Stride()]
}

func (b *PixelBuffer) RGBAt(x, y int) RGB {
	i := y*b.Stride() + 3*x
	return RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

func (b *PixelBuffer) SetRGB(x, y int, c RGB) {
	i := y*b.Stride() + 3*x
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = c.R, c.G, c.B
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Size, b.Size) }

// At implements image.Image.
func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	c := b.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA copies the buffer into an opaque *image.RGBA.
func (b *PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
