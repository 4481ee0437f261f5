// Package fractal computes escape-time fractal images (Mandelbrot, Julia and
// variant formulas) over a window of the complex plane.
//
// The package holds the pure parts of the engine: the view state, the mapping
// between pixels and the plane, the escape-time evaluators and the colormaps.
// The parallel scheduler that fills a PixelBuffer lives in the render package.
package fractal

// Mode selects which argument of the escape iteration sweeps the pixel grid.
type Mode int

const (
	// ModeMandelbrot sweeps c over the grid, starting every orbit at z = 0.
	ModeMandelbrot Mode = iota
	// ModeJulia holds c at the view's seed and sweeps the starting z.
	ModeJulia
)

func (m Mode) String() string {
	switch m {
	case ModeMandelbrot:
		return "mandelbrot"
	case ModeJulia:
		return "julia"
	}
	return "unknown"
}

// Region within the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center returns the midpoint of the region.
func (r Region) Center() Complex {
	return Complex{R: (r.Xmin + r.Xmax) / 2, I: (r.Ymin + r.Ymax) / 2}
}

// Magnification returns the zoom factor at which a view with the given
// half-width shows the region's horizontal extent edge to edge.
func (r Region) Magnification(boundsHalfWidth float64) float64 {
	w := r.Xmax - r.Xmin
	if w <= 0 {
		return 1
	}
	return 2 * boundsHalfWidth / w
}

// Landmark is a named region worth visiting.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks are preset Mandelbrot regions, ordered by landmark id.
var Landmarks = []Landmark{
	// gap between the main cardioid and the period-2 bulb, upper side
	{Name: "Seahorse Valley", Region: Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}},
	// cusp of the cardioid on the positive real axis, around 0.3
	{Name: "Elephant Valley", Region: Region{Xmin: 0.25, Xmax: 0.35, Ymin: -0.05, Ymax: 0.05}},
	// narrow window deeper inside Seahorse Valley
	{Name: "Spiral Minibrot", Region: Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}},
	// window just above the real axis near -0.7465
	{Name: "Triple Spiral", Region: Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}},
	// upper edge of the valley, imaginary part near 0.18
	{Name: "Valley of the Dragon", Region: Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}},
	// on the real-axis needle just right of the period-3 minibrot at -1.75
	{Name: "Minibrot in a Mini-Spiral", Region: Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}},
}
