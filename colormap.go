package fractal

import (
	"fmt"
	"math"
)

// RGB is one pixel colour.
type RGB struct {
	R, G, B uint8
}

// Colormap turns an escape count into a colour. Implementations are pure
// and total: any pair of ints maps to a valid RGB.
type Colormap interface {
	Colorize(iter, maxIter int) RGB
	Name() string
}

// ColormapID selects a Colormap from the fixed registry.
type ColormapID int

const (
	ColormapGradient ColormapID = iota
	ColormapBanded
)

var colormaps = [...]Colormap{
	ColormapGradient: gradient{},
	ColormapBanded:   banded{},
}

// Colormaps lists every registered id in registry order.
func Colormaps() []ColormapID {
	ids := make([]ColormapID, len(colormaps))
	for i := range ids {
		ids[i] = ColormapID(i)
	}
	return ids
}

func (id ColormapID) Colormap() (Colormap, error) {
	if id < 0 || int(id) >= len(colormaps) {
		return nil, fmt.Errorf("colormap %d: %w", int(id), ErrUnknownColormap)
	}
	return colormaps[id], nil
}

// Next returns the id after id, wrapping around the registry.
func (id ColormapID) Next() ColormapID {
	return ColormapID((int(id) + 1) % len(colormaps))
}

func (id ColormapID) String() string {
	c, err := id.Colormap()
	if err != nil {
		return fmt.Sprintf("ColormapID(%d)", int(id))
	}
	return c.Name()
}

// normalize returns iter/maxIter clamped to [0,1]. A non-positive cap
// counts as "never escaped".
func normalize(iter, maxIter int) float64 {
	if maxIter <= 0 {
		return 1
	}
	return min(max(float64(iter)/float64(maxIter), 0), 1)
}

// lerp maps t in [0,1] onto [lo,hi].
func lerp(lo, hi, t float64) float64 {
	return t*(hi-lo) + lo
}

// unlerp maps x in [lo,hi] onto [0,1].
func unlerp(lo, hi, x float64) float64 {
	return (x - lo) / (hi - lo)
}

func channel(f float64) uint8 {
	if math.IsNaN(f) {
		return 0
	}
	return uint8(min(max(f, 0), 255))
}

func rgb(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// gradient runs dark blue through cyan to white in three linear bands.
type gradient struct{}

func (gradient) Name() string { return "gradient" }

func (gradient) Colorize(iter, maxIter int) RGB {
	x := normalize(iter, maxIter)
	c := x * 255
	switch {
	case x >= 0.9:
		n := unlerp(0.9, 1, x)
		return rgb(lerp(0, 255, n), c, 255)
	case x > 0.2:
		n := unlerp(0.2, 0.9, x)
		return rgb(0, lerp(51, 229.5, n), lerp(204, 255, n))
	default:
		n := unlerp(0, 0.2, x)
		return rgb(lerp(0, 51, 1-n), lerp(0, 51, n), c*3+51)
	}
}

// banded is a coarse three-step contour map.
type banded struct{}

var (
	bandInterior = RGB{}
	bandOuter    = RGB{G: 64}
	bandInner    = RGB{G: 160}
)

func (banded) Name() string { return "banded" }

func (banded) Colorize(iter, maxIter int) RGB {
	x := normalize(iter, maxIter)
	switch {
	case x >= 1:
		return bandInterior
	case x > 0.5:
		return bandInner
	default:
		return bandOuter
	}
}
