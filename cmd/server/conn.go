package main

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/session"
)

// Ops handled by the connection itself rather than the session.
const (
	opDisplay session.Op = "display" // canvas size in CSS pixels
	opRender  session.Op = "render"  // resend state and frames
)

// request is a session command plus the client's display size, which is all
// the server needs to map canvas coordinates to rendered pixels.
type request struct {
	session.Command
	Display int `json:"display,omitempty"`
}

// state is sent as a JSON text message before every pair of frames.
type state struct {
	Mandelbrot panelState `json:"mandelbrot"`
	Julia      panelState `json:"julia"`
	Display    int        `json:"display"`
	Error      string     `json:"error,omitempty"`
}

type panelState struct {
	fractal.View
	EvaluatorName string `json:"evaluatorName"`
	ColormapName  string `json:"colormapName"`
}

func newPanelState(v fractal.View) panelState {
	return panelState{
		View:          v,
		EvaluatorName: v.Evaluator.String(),
		ColormapName:  v.Colormap.String(),
	}
}

type client struct {
	conn    *websocket.Conn
	sess    *session.Session
	display int
}

// serveConn runs the request/frames loop. Invalid commands are reported in
// the next state message and do not end the session.
func serveConn(ctx context.Context, c *websocket.Conn, cfg handlerConfig) error {
	sess, err := session.New(cfg.renderer, cfg.size)
	if err != nil {
		return err
	}
	cl := &client{conn: c, sess: sess, display: cfg.size}

	if err := cl.sendFrames(ctx, nil); err != nil {
		return err
	}
	for {
		var req request
		if err := wsjson.Read(ctx, c, &req); err != nil {
			return err
		}
		if err := cl.sendFrames(ctx, cl.handle(req)); err != nil {
			return err
		}
	}
}

func (cl *client) handle(req request) error {
	switch req.Op {
	case opRender:
		return nil
	case opDisplay:
		if req.Display <= 0 || req.Display > maxDisplay {
			return fmt.Errorf("display %d out of range (1..%d)", req.Display, maxDisplay)
		}
		cl.display = req.Display
		return nil
	case session.OpResize:
		if req.Size > maxDisplay {
			return fmt.Errorf("size %d out of range (1..%d)", req.Size, maxDisplay)
		}
	case session.OpPan, session.OpTrack:
		v, err := cl.sess.View(req.Panel)
		if err != nil {
			return err
		}
		req.X = req.X * v.Size / cl.display
		req.Y = req.Y * v.Size / cl.display
	}
	return cl.sess.Apply(req.Command)
}

func (cl *client) sendFrames(ctx context.Context, cmdErr error) error {
	m, _ := cl.sess.View(session.PanelMandelbrot)
	j, _ := cl.sess.View(session.PanelJulia)
	st := state{
		Mandelbrot: newPanelState(m),
		Julia:      newPanelState(j),
		Display:    cl.display,
	}
	if cmdErr != nil {
		st.Error = cmdErr.Error()
	}
	if err := wsjson.Write(ctx, cl.conn, st); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	for _, p := range []session.Panel{session.PanelMandelbrot, session.PanelJulia} {
		buf, err := cl.sess.Render(p)
		if err != nil {
			return err
		}
		if err := cl.conn.Write(ctx, websocket.MessageBinary, encodeFrame(p, buf, cl.display)); err != nil {
			return fmt.Errorf("write %s frame: %w", p, err)
		}
	}
	return nil
}
