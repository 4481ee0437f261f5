// cliclient drives a fractal explorer session from the command line.
// It keeps the Mandelbrot/Julia session locally and renders through the
// server's irpc Renderer service, so the server's scheduler does the work.
// Each argument is applied as one command, after which both panels are
// rendered and their views printed. Useful for smoke testing a deployment
// and for timing remote renders.
//
//	cliclient -addr :8081 zoom:3 iterations:+ landmark:2
//	cliclient -addr ws://localhost:8080/rpc track:100,40 render
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/session"
)

// opRender re-renders without changing the session.
const opRender session.Op = "render"

// main is the entry point for the CLI client.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the server and replays the commands.
func run() error {
	addr := flag.String("addr", ":8081", "server address: tcp host:port or ws:// url of /rpc")
	size := flag.Int("size", 256, "panel size in pixels")
	flag.Parse()

	// Step 1: Parse commands before touching the network
	cmds := make([]session.Command, 0, flag.NArg())
	for _, arg := range flag.Args() {
		cmd, err := parseCommand(arg)
		if err != nil {
			return err
		}
		cmds = append(cmds, cmd)
	}

	// Step 2: Connect to the server
	log.Printf("Connecting to fractal server at %s...", *addr)
	conn, err := dial(*addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	// Step 3: Create a client for the Renderer interface
	log.Printf("Creating Renderer client...")
	client, err := fractal.NewRendererIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create Renderer client: %w", err)
	}

	// Step 4: Replay commands, rendering remotely after each one
	return replay(os.Stdout, client, *size, cmds)
}

// dial opens a tcp connection, or a binary websocket when addr is a ws url.
func dial(addr string) (net.Conn, error) {
	if !strings.HasPrefix(addr, "ws://") && !strings.HasPrefix(addr, "wss://") {
		return net.Dial("tcp", addr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, err
	}
	c.SetReadLimit(128 << 20)
	return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
}

// replay renders both panels through r, then applies each command in turn
// and renders again. A rejected command is printed and skipped.
func replay(w io.Writer, r fractal.Renderer, size int, cmds []session.Command) error {
	sess, err := session.New(r, size)
	if err != nil {
		return err
	}
	if err := printUpdate(w, sess, "initial"); err != nil {
		return err
	}

	for i, cmd := range cmds {
		label := fmt.Sprintf("%d %s", i+1, cmd.Op)
		if cmd.Op != opRender {
			if err := sess.Apply(cmd); err != nil {
				fmt.Fprintf(w, "%s: error: %v\n", label, err)
				continue
			}
		}
		if err := printUpdate(w, sess, label); err != nil {
			return err
		}
	}
	return nil
}

func printUpdate(w io.Writer, sess *session.Session, label string) error {
	fmt.Fprintf(w, "%s:\n", label)
	for _, p := range []session.Panel{session.PanelMandelbrot, session.PanelJulia} {
		v, err := sess.View(p)
		if err != nil {
			return err
		}
		start := time.Now()
		buf, err := sess.Render(p)
		if err != nil {
			return fmt.Errorf("render %s: %w", p, err)
		}
		fmt.Fprintf(w, "  %-10s origin=(%g,%g) mag=%g iter=%d %s/%s seed=(%g,%g) frame %dx%d in %s\n",
			p, v.OriginX, v.OriginY, v.Magnification, v.MaxIterations,
			v.Evaluator, v.Colormap, v.SeedReal, v.SeedImag,
			buf.Size, buf.Size, time.Since(start).Round(time.Microsecond))
	}
	return nil
}

// parseCommand reads op[:arg] for panel 0, or op@panel[:arg].
// Pixel ops take "x,y"; iterations takes "+" or "-".
func parseCommand(s string) (session.Command, error) {
	head, arg, _ := strings.Cut(s, ":")
	name, panel, hasPanel := strings.Cut(head, "@")
	cmd := session.Command{Op: session.Op(name)}
	if hasPanel {
		p, err := strconv.Atoi(panel)
		if err != nil {
			return cmd, fmt.Errorf("%q: panel: %w", s, err)
		}
		cmd.Panel = session.Panel(p)
	}

	var err error
	switch cmd.Op {
	case session.OpPan, session.OpTrack:
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return cmd, fmt.Errorf("%q: want x,y", s)
		}
		if cmd.X, err = strconv.Atoi(xs); err == nil {
			cmd.Y, err = strconv.Atoi(ys)
		}
	case session.OpZoom:
		cmd.Steps, err = strconv.Atoi(arg)
	case session.OpIterations:
		cmd.Increase = arg != "-"
	case session.OpResize:
		cmd.Size, err = strconv.Atoi(arg)
	case session.OpEvaluator, session.OpColormap, session.OpLandmark:
		cmd.ID, err = strconv.Atoi(arg)
	}
	if err != nil {
		return cmd, fmt.Errorf("%q: %w", s, err)
	}
	return cmd, nil
}
