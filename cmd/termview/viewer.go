package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/session"
)

// halfBlock paints the upper pixel of a cell in the foreground colour and
// the lower one in the background colour.
const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)

var panels = [...]session.Panel{session.PanelMandelbrot, session.PanelJulia}

// viewer owns the screen and the session; it is the only writer of both.
type viewer struct {
	screen tcell.Screen
	sess   *session.Session

	side     int // panel side in pixels; also its width in cells
	active   session.Panel
	landmark int
	buttons  tcell.ButtonMask
	message  string

	frames [len(panels)]*fractal.PixelBuffer
}

func newViewer(screen tcell.Screen, r fractal.Renderer) (*viewer, error) {
	w, h := screen.Size()
	side := panelSide(w, h)
	sess, err := session.New(r, side)
	if err != nil {
		return nil, err
	}
	v := &viewer{screen: screen, sess: sess, side: side}
	if err := v.refresh(panels[:]...); err != nil {
		return nil, err
	}
	return v, nil
}

// panelSide fits two square panels next to each other above the status
// line, with two pixel rows per cell row.
func panelSide(w, h int) int {
	return max(min(w/2, 2*(h-1)), 1)
}

func (v *viewer) loop() error {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit, err := v.handleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleEvent turns one terminal event into session commands and redraws
// the panels they touched.
func (v *viewer) handleEvent(ev tcell.Event) (quit bool, err error) {
	var cmds []session.Command

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		v.side = panelSide(w, h)
		for _, p := range panels {
			cmds = append(cmds, session.Command{Op: session.OpResize, Panel: p, Size: v.side})
		}
		v.screen.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true, nil
		}
		cmds = v.keyCommands(ev)

	case *tcell.EventMouse:
		cmds = v.mouseCommands(ev)
	}

	if len(cmds) == 0 {
		return false, nil
	}
	return false, v.apply(cmds...)
}

func (v *viewer) keyCommands(ev *tcell.EventKey) []session.Command {
	p := v.active
	center := v.side / 2
	step := max(v.side/10, 1)

	switch ev.Key() {
	case tcell.KeyTab:
		v.active = panels[(int(v.active)+1)%len(panels)]
		v.draw()
		return nil
	case tcell.KeyLeft:
		return []session.Command{{Op: session.OpPan, Panel: p, X: center - step, Y: center}}
	case tcell.KeyRight:
		return []session.Command{{Op: session.OpPan, Panel: p, X: center + step, Y: center}}
	case tcell.KeyUp:
		return []session.Command{{Op: session.OpPan, Panel: p, X: center, Y: center - step}}
	case tcell.KeyDown:
		return []session.Command{{Op: session.OpPan, Panel: p, X: center, Y: center + step}}
	case tcell.KeyRune:
	default:
		return nil
	}

	view, _ := v.sess.View(p)
	switch ev.Rune() {
	case '+', '=':
		return []session.Command{{Op: session.OpZoom, Panel: p, Steps: 1}}
	case '-', '_':
		return []session.Command{{Op: session.OpZoom, Panel: p, Steps: -1}}
	case ']':
		return []session.Command{{Op: session.OpIterations, Panel: p, Increase: true}}
	case '[':
		return []session.Command{{Op: session.OpIterations, Panel: p}}
	case 'r':
		return []session.Command{{Op: session.OpReset, Panel: p}}
	case 'e':
		return []session.Command{{Op: session.OpEvaluator, Panel: p, ID: int(view.Evaluator.Next())}}
	case 'c':
		return []session.Command{{Op: session.OpColormap, Panel: p, ID: int(view.Colormap.Next())}}
	case 'l':
		id := v.landmark
		v.landmark = (v.landmark + 1) % len(fractal.Landmarks)
		v.message = fractal.Landmarks[id].Name
		return []session.Command{{Op: session.OpLandmark, Panel: session.PanelMandelbrot, ID: id}}
	}
	return nil
}

func (v *viewer) mouseCommands(ev *tcell.EventMouse) []session.Command {
	btn := ev.Buttons()
	pressed := btn &^ v.buttons
	v.buttons = btn

	x, y := ev.Position()
	p, px, ok := v.hit(x, y)
	if !ok {
		return nil
	}
	v.active = p

	switch {
	case btn&tcell.WheelUp != 0:
		return []session.Command{{Op: session.OpZoom, Panel: p, Steps: 1}}
	case btn&tcell.WheelDown != 0:
		return []session.Command{{Op: session.OpZoom, Panel: p, Steps: -1}}
	case pressed&tcell.Button1 != 0:
		return []session.Command{{Op: session.OpPan, Panel: p, X: px.X, Y: px.Y}}
	case btn == tcell.ButtonNone && p == session.PanelMandelbrot:
		return []session.Command{{Op: session.OpTrack, Panel: p, X: px.X, Y: px.Y}}
	}
	return nil
}

// hit finds the panel under cell (x, y) and the pixel within it.
func (v *viewer) hit(x, y int) (session.Panel, image.Point, bool) {
	global := image.Pt(x, 2*y)
	for _, p := range panels {
		px := fractal.PixelFromGlobal(global, v.frameOrigin(p))
		if px.In(image.Rect(0, 0, v.side, v.side)) {
			return p, px, true
		}
	}
	return 0, image.Point{}, false
}

// frameOrigin is the top-left pixel of the panel in screen pixel space.
func (v *viewer) frameOrigin(p session.Panel) image.Point {
	return image.Pt(int(p)*v.side, 0)
}

// apply runs cmds and re-renders what changed. A rejected command is shown
// on the status line; only render failures are fatal.
func (v *viewer) apply(cmds ...session.Command) error {
	var dirty []session.Panel
	for _, cmd := range cmds {
		if err := v.sess.Apply(cmd); err != nil {
			v.message = err.Error()
			continue
		}
		p := cmd.Panel
		if cmd.Op == session.OpTrack {
			p = session.PanelJulia
		}
		dirty = append(dirty, p)
	}
	return v.refresh(dirty...)
}

func (v *viewer) refresh(dirty ...session.Panel) error {
	for _, p := range dirty {
		buf, err := v.sess.Render(p)
		if err != nil {
			if errors.Is(err, fractal.ErrInvalidConfiguration) {
				v.message = err.Error()
				continue
			}
			return err
		}
		v.frames[p] = buf
	}
	v.draw()
	return nil
}

func (v *viewer) draw() {
	v.screen.Clear()
	for _, p := range panels {
		if buf := v.frames[p]; buf != nil {
			v.drawFrame(v.frameOrigin(p).X, buf)
		}
	}
	_, h := v.screen.Size()
	v.drawText(0, h-1, v.statusLine(), statusStyle)
	v.message = ""
	v.screen.Show()
}

// drawFrame paints buf with two pixel rows per cell row starting at column x0.
func (v *viewer) drawFrame(x0 int, buf *fractal.PixelBuffer) {
	for y := 0; y < buf.Size; y += 2 {
		for x := 0; x < buf.Size; x++ {
			style := tcell.StyleDefault.Foreground(cellColor(buf.RGBAt(x, y)))
			if y+1 < buf.Size {
				style = style.Background(cellColor(buf.RGBAt(x, y+1)))
			}
			v.screen.SetContent(x0+x, y/2, halfBlock, nil, style)
		}
	}
}

func cellColor(c fractal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *viewer) drawText(x, y int, s string, style tcell.Style) {
	w, _ := v.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (v *viewer) statusLine() string {
	view, _ := v.sess.View(v.active)
	julia, _ := v.sess.View(session.PanelJulia)
	s := fmt.Sprintf(" [%s] mag %.3g  iter %d  %s/%s  c=%.4f%+.4fi",
		v.active, view.Magnification, view.MaxIterations, view.Evaluator, view.Colormap,
		julia.SeedReal, julia.SeedImag)
	if v.message != "" {
		s += "  | " + v.message
	}
	return s
}
