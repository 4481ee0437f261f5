package fractal

import "errors"

var (
	// ErrInvalidConfiguration is returned for a view that cannot be rendered:
	// non-positive size, iteration cap, magnification or bounds.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	ErrUnknownEvaluator = errors.New("unknown evaluator")
	ErrUnknownColormap  = errors.New("unknown colormap")
)
