package fractal

import (
	"fmt"
	"image"
)

// PixelToPlane maps a pixel coordinate on one axis of v to the plane:
//
//	(coord/size*2*b - b)/magnification + origin
//
// where b is the view's BoundsHalfWidth. The same formula serves both axes,
// x with OriginX and y with OriginY.
func PixelToPlane(coord int, v View, origin float64) (float64, error) {
	if err := checkMapping(v); err != nil {
		return 0, err
	}
	return pixelToPlane(float64(coord), float64(v.Size), v.BoundsHalfWidth, v.Magnification, origin), nil
}

// PlaneToPixel is the inverse of PixelToPlane. The result is fractional; a
// point inside the pixel grid lands in [0, size).
func PlaneToPixel(p float64, v View, origin float64) (float64, error) {
	if err := checkMapping(v); err != nil {
		return 0, err
	}
	b := v.BoundsHalfWidth
	return ((p-origin)*v.Magnification + b) * float64(v.Size) / (2 * b), nil
}

// PlaneAxis maps every coordinate in [0, size) along one axis.
func PlaneAxis(v View, origin float64) ([]float64, error) {
	if err := checkMapping(v); err != nil {
		return nil, err
	}
	axis := make([]float64, v.Size)
	size := float64(v.Size)
	for i := range axis {
		axis[i] = pixelToPlane(float64(i), size, v.BoundsHalfWidth, v.Magnification, origin)
	}
	return axis, nil
}

// PixelToPoint maps pixel (x, y) of v to the plane, x on the real axis and y
// on the imaginary axis.
func (v View) PixelToPoint(x, y int) (Complex, error) {
	re, err := PixelToPlane(x, v, v.OriginX)
	if err != nil {
		return Complex{}, err
	}
	im, err := PixelToPlane(y, v, v.OriginY)
	if err != nil {
		return Complex{}, err
	}
	return Complex{R: re, I: im}, nil
}

// PointToPixel maps a plane point back to (fractional) pixel coordinates of v.
func (v View) PointToPixel(p Complex) (x, y float64, err error) {
	if x, err = PlaneToPixel(p.R, v, v.OriginX); err != nil {
		return 0, 0, err
	}
	if y, err = PlaneToPixel(p.I, v, v.OriginY); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// PixelFromGlobal converts a pointer position in display coordinates to a
// pixel of the frame drawn at frameOrigin.
func PixelFromGlobal(mouse, frameOrigin image.Point) image.Point {
	return mouse.Sub(frameOrigin)
}

func pixelToPlane(coord, size, b, mag, origin float64) float64 {
	return (coord/size*2*b-b)/mag + origin
}

func checkMapping(v View) error {
	if v.Size <= 0 {
		return fmt.Errorf("map pixel with size %d: %w", v.Size, ErrInvalidConfiguration)
	}
	if !(v.Magnification > 0) {
		return fmt.Errorf("map pixel with magnification %g: %w", v.Magnification, ErrInvalidConfiguration)
	}
	if !(v.BoundsHalfWidth > 0) {
		return fmt.Errorf("map pixel with bounds %g: %w", v.BoundsHalfWidth, ErrInvalidConfiguration)
	}
	return nil
}
