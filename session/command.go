package session

// Op names a Command.
type Op string

const (
	OpPan        Op = "pan"        // recenter Panel on pixel (X, Y)
	OpZoom       Op = "zoom"       // Steps wheel ticks, negative zooms out
	OpReset      Op = "reset"      // default origin, magnification and cap
	OpIterations Op = "iterations" // raise or lower the cap per Increase
	OpResize     Op = "resize"     // set Size
	OpEvaluator  Op = "evaluator"  // select evaluator ID
	OpColormap   Op = "colormap"   // select colormap ID
	OpLandmark   Op = "landmark"   // frame fractal.Landmarks[ID]
	OpTrack      Op = "track"      // Julia seed from Mandelbrot pixel (X, Y)
)

// Command is one decoded user action. Pixel coordinates are local to the
// panel's frame. Fields an op does not use are ignored.
type Command struct {
	Op       Op    `json:"op"`
	Panel    Panel `json:"panel"`
	X        int   `json:"x,omitempty"`
	Y        int   `json:"y,omitempty"`
	Steps    int   `json:"steps,omitempty"`
	Increase bool  `json:"increase,omitempty"`
	Size     int   `json:"size,omitempty"`
	ID       int   `json:"id,omitempty"`
}
