package fractal

//go:generate go run github.com/marben/irpc/cmd/irpc $GOFILE

// Renderer fills a fresh PixelBuffer for a view. The view is a snapshot;
// the mode decides whether the pixel grid sweeps c or the starting z.
type Renderer interface {
	Render(v View, mode Mode) (*PixelBuffer, error)
}
