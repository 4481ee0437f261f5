// Package session holds the state of a two-panel explorer: a Mandelbrot view
// and a Julia view whose seed follows the cursor over the Mandelbrot panel.
// Presentation layers decode their raw input into Commands and call Apply;
// they decide themselves when to Render.
package session

import (
	"errors"
	"fmt"

	fractal "github.com/marben/fractal_explorer"
)

var (
	ErrUnknownPanel = errors.New("unknown panel")
	ErrUnknownOp    = errors.New("unknown op")
)

// DefaultJuliaSeed is shown until the cursor first moves over the
// Mandelbrot panel.
var DefaultJuliaSeed = fractal.Complex{R: -0.8, I: 0.156}

// Panel identifies one of the two displayed fractals.
type Panel int

const (
	PanelMandelbrot Panel = iota
	PanelJulia
)

func (p Panel) String() string {
	switch p {
	case PanelMandelbrot:
		return "mandelbrot"
	case PanelJulia:
		return "julia"
	}
	return fmt.Sprintf("Panel(%d)", int(p))
}

// Mode is the render mode the panel is drawn in.
func (p Panel) Mode() fractal.Mode {
	if p == PanelJulia {
		return fractal.ModeJulia
	}
	return fractal.ModeMandelbrot
}

func (p Panel) valid() bool { return p == PanelMandelbrot || p == PanelJulia }

// Session is not safe for concurrent use; one goroutine owns it.
type Session struct {
	views    [2]fractal.View
	renderer fractal.Renderer
}

// New creates a session whose panels are size×size and render with r.
func New(r fractal.Renderer, size int) (*Session, error) {
	m, err := fractal.NewView(size)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{
		views:    [2]fractal.View{m, m.WithSeed(DefaultJuliaSeed)},
		renderer: r,
	}, nil
}

// View returns a copy of the panel's current view.
func (s *Session) View(p Panel) (fractal.View, error) {
	if !p.valid() {
		return fractal.View{}, fmt.Errorf("panel %d: %w", int(p), ErrUnknownPanel)
	}
	return s.views[p], nil
}

// Render draws the panel from a snapshot of its view.
func (s *Session) Render(p Panel) (*fractal.PixelBuffer, error) {
	v, err := s.View(p)
	if err != nil {
		return nil, err
	}
	buf, err := s.renderer.Render(v, p.Mode())
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", p, err)
	}
	return buf, nil
}

// Apply performs one command. On error the session is left unchanged.
func (s *Session) Apply(cmd Command) error {
	if !cmd.Panel.valid() {
		return fmt.Errorf("%s: panel %d: %w", cmd.Op, int(cmd.Panel), ErrUnknownPanel)
	}
	v := s.views[cmd.Panel]

	var err error
	switch cmd.Op {
	case OpPan:
		var p fractal.Complex
		if p, err = v.PixelToPoint(cmd.X, cmd.Y); err == nil {
			v = v.Pan(p)
		}
	case OpZoom:
		v = v.Zoom(cmd.Steps)
	case OpReset:
		v = v.Reset()
	case OpIterations:
		v = v.AdjustIterationCap(cmd.Increase)
	case OpResize:
		v, err = v.Resize(cmd.Size)
	case OpEvaluator:
		v, err = v.SelectEvaluator(fractal.EvaluatorID(cmd.ID))
	case OpColormap:
		v, err = v.SelectColormap(fractal.ColormapID(cmd.ID))
	case OpLandmark:
		if cmd.ID < 0 || cmd.ID >= len(fractal.Landmarks) {
			err = fmt.Errorf("landmark %d: %w", cmd.ID, fractal.ErrInvalidConfiguration)
		} else {
			v = v.Frame(fractal.Landmarks[cmd.ID].Region)
		}
	case OpTrack:
		return s.track(cmd)
	default:
		return fmt.Errorf("%q: %w", cmd.Op, ErrUnknownOp)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", cmd.Op, cmd.Panel, err)
	}
	s.views[cmd.Panel] = v
	return nil
}

// track moves the Julia seed to the plane point under the cursor on the
// Mandelbrot panel. Points outside the panel are ignored.
func (s *Session) track(cmd Command) error {
	if cmd.Panel != PanelMandelbrot {
		return fmt.Errorf("track on %s: %w", cmd.Panel, ErrUnknownPanel)
	}
	m := s.views[PanelMandelbrot]
	if cmd.X < 0 || cmd.Y < 0 || cmd.X >= m.Size || cmd.Y >= m.Size {
		return nil
	}
	c, err := m.PixelToPoint(cmd.X, cmd.Y)
	if err != nil {
		return fmt.Errorf("track: %w", err)
	}
	s.views[PanelJulia] = s.views[PanelJulia].WithSeed(c)
	return nil
}
