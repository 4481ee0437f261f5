package main

import (
	"encoding/binary"
	"image"

	"golang.org/x/image/draw"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/session"
)

const (
	maxDisplay     = 4096
	frameHeaderLen = 9
)

// encodeFrame lays out a binary frame message:
//
//	[0]    panel
//	[1:5]  width, big endian
//	[5:9]  height, big endian
//	[9:]   RGBA pixels, ready for canvas ImageData
func encodeFrame(p session.Panel, buf *fractal.PixelBuffer, display int) []byte {
	img := scaleFrame(buf, display)
	out := make([]byte, frameHeaderLen+len(img.Pix))
	out[0] = byte(p)
	binary.BigEndian.PutUint32(out[1:5], uint32(img.Rect.Dx()))
	binary.BigEndian.PutUint32(out[5:9], uint32(img.Rect.Dy()))
	copy(out[frameHeaderLen:], img.Pix)
	return out
}

// scaleFrame converts buf to RGBA at display×display. Enlarging keeps hard
// pixel edges; shrinking filters.
func scaleFrame(buf *fractal.PixelBuffer, display int) *image.RGBA {
	if display <= 0 || display == buf.Size {
		return buf.RGBA()
	}
	dst := image.NewRGBA(image.Rect(0, 0, display, display))
	var s draw.Scaler = draw.ApproxBiLinear
	if display > buf.Size {
		s = draw.NearestNeighbor
	}
	s.Scale(dst, dst.Bounds(), buf, buf.Bounds(), draw.Src, nil)
	return dst
}
