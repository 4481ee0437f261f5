package fractal

import (
	"fmt"
	"math"
)

const (
	DefaultSize            = 800
	DefaultBoundsHalfWidth = 2.0
	DefaultMaxIterations   = 100
	DefaultMagnification   = 1.0

	// ZoomFactor is the magnification change of a single wheel step.
	ZoomFactor = 1.5

	// MinMagnification keeps the mapping's divisor away from zero.
	MinMagnification = 1e-9
	// MaxMagnification is roughly where float64 runs out of digits for a
	// window a few hundred pixels wide.
	MaxMagnification = 1e13

	// MaxIterationCap bounds AdjustIterationCap so repeated increases cannot
	// overflow or stall an interactive render indefinitely.
	MaxIterationCap = 1 << 20
)

// View is the state of one displayed fractal. It is a plain value: the
// mutation methods return an updated copy, and any copy handed to a renderer
// is a snapshot that later input cannot disturb.
type View struct {
	Size            int     `json:"size"`
	OriginX         float64 `json:"originX"`
	OriginY         float64 `json:"originY"`
	Magnification   float64 `json:"magnification"`
	BoundsHalfWidth float64 `json:"boundsHalfWidth"`
	MaxIterations   int     `json:"maxIterations"`

	// Seed is the constant c of a Julia view; Mandelbrot views ignore it.
	SeedReal float64 `json:"seedReal"`
	SeedImag float64 `json:"seedImag"`

	Evaluator EvaluatorID `json:"evaluator"`
	Colormap  ColormapID  `json:"colormap"`
}

// NewView returns a view of the given size with default window and settings.
func NewView(size int) (View, error) {
	v := View{
		Size:            size,
		Magnification:   DefaultMagnification,
		BoundsHalfWidth: DefaultBoundsHalfWidth,
		MaxIterations:   DefaultMaxIterations,
		Evaluator:       EvaluatorStandard,
		Colormap:        ColormapGradient,
	}
	if err := v.Validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// Validate reports whether v can be mapped and rendered.
func (v View) Validate() error {
	switch {
	case v.Size <= 0:
		return fmt.Errorf("size %d: %w", v.Size, ErrInvalidConfiguration)
	case v.MaxIterations <= 0:
		return fmt.Errorf("max iterations %d: %w", v.MaxIterations, ErrInvalidConfiguration)
	case !(v.Magnification > 0) || math.IsInf(v.Magnification, 0):
		return fmt.Errorf("magnification %g: %w", v.Magnification, ErrInvalidConfiguration)
	case !(v.BoundsHalfWidth > 0) || math.IsInf(v.BoundsHalfWidth, 0):
		return fmt.Errorf("bounds %g: %w", v.BoundsHalfWidth, ErrInvalidConfiguration)
	}
	return nil
}

// Origin returns the plane point at the centre of the view.
func (v View) Origin() Complex {
	return Complex{R: v.OriginX, I: v.OriginY}
}

// Seed returns the Julia constant.
func (v View) Seed() Complex {
	return Complex{R: v.SeedReal, I: v.SeedImag}
}

// Pan recenters the view on p.
func (v View) Pan(p Complex) View {
	v.OriginX, v.OriginY = p.R, p.I
	return v
}

// Zoom multiplies the magnification by ZoomFactor per positive step and
// divides by it per negative step, like scroll wheel ticks.
func (v View) Zoom(steps int) View {
	if steps > 0 {
		v.Magnification *= math.Pow(ZoomFactor, float64(steps))
	} else {
		v.Magnification /= math.Pow(ZoomFactor, float64(-steps))
	}
	v.Magnification = min(max(v.Magnification, MinMagnification), MaxMagnification)
	return v
}

// Reset restores the default origin, magnification and iteration cap.
func (v View) Reset() View {
	v.OriginX, v.OriginY = 0, 0
	v.Magnification = DefaultMagnification
	v.MaxIterations = DefaultMaxIterations
	return v
}

// AdjustIterationCap raises the cap to round((cap+1)*1.1) or lowers it to
// round(cap/1.1). A decrease that would leave the cap at 1 or below is ignored.
func (v View) AdjustIterationCap(increase bool) View {
	if increase {
		next := math.Round(float64(v.MaxIterations+1) * 1.1)
		v.MaxIterations = int(min(next, MaxIterationCap))
		return v
	}
	if next := math.Round(float64(v.MaxIterations) / 1.1); next > 1 {
		v.MaxIterations = int(next)
	}
	return v
}

// Resize changes the output dimension without touching the plane window.
func (v View) Resize(size int) (View, error) {
	if size <= 0 {
		return v, fmt.Errorf("resize to %d: %w", size, ErrInvalidConfiguration)
	}
	v.Size = size
	return v, nil
}

// WithSeed sets the Julia constant.
func (v View) WithSeed(c Complex) View {
	v.SeedReal, v.SeedImag = c.R, c.I
	return v
}

// Frame centers the view on r and zooms until its width fills the view.
func (v View) Frame(r Region) View {
	v = v.Pan(r.Center())
	v.Magnification = min(max(r.Magnification(v.BoundsHalfWidth), MinMagnification), MaxMagnification)
	return v
}

func (v View) SelectEvaluator(id EvaluatorID) (View, error) {
	if _, err := id.Evaluator(); err != nil {
		return v, err
	}
	v.Evaluator = id
	return v, nil
}

func (v View) SelectColormap(id ColormapID) (View, error) {
	if _, err := id.Colormap(); err != nil {
		return v, err
	}
	v.Colormap = id
	return v, nil
}
