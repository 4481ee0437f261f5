// termview explores the Mandelbrot set and its Julia sets in a terminal.
// Both panels are drawn with half-block characters, two pixels per cell, so
// it needs a terminal with truecolor and mouse support. With -server the
// frames are rendered by a fractal server over irpc instead of locally.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/marben/irpc"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	workers := flag.Int("workers", render.DefaultWorkers, "row bands per render (0 = one per CPU)")
	logFile := flag.String("log", "", "write render timings to this file")
	server := flag.String("server", "", "render on the fractal server at this irpc tcp address")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		fractal.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	renderer, closeRenderer, err := newRenderer(*server, *workers)
	if err != nil {
		return err
	}
	defer closeRenderer()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	v, err := newViewer(screen, renderer)
	if err != nil {
		return err
	}
	return v.loop()
}

// newRenderer returns a local scheduler, or an irpc client of the server at
// addr when addr is set.
func newRenderer(addr string, workers int) (fractal.Renderer, func(), error) {
	if addr == "" {
		scheduler := render.NewScheduler(render.WithWorkers(workers))
		return scheduler, scheduler.Close, nil
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(conn)
	client, err := fractal.NewRendererIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, nil, fmt.Errorf("failed to create Renderer client: %w", err)
	}
	return client, func() { ep.Close() }, nil
}
