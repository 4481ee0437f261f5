// server serves the fractal explorer. Browsers connect to /ws: each
// connection gets its own Mandelbrot/Julia session and the page in ./static
// sends JSON commands and paints the RGBA frames it receives. Other programs
// render through the fractal.Renderer irpc service, over TCP or over the /rpc
// websocket. Everything shares one render scheduler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/marben/irpc"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	rpcAddr := flag.String("rpc", ":8081", "irpc tcp listen address")
	size := flag.Int("size", 512, "rendered panel size in pixels")
	workers := flag.Int("workers", render.DefaultWorkers, "row bands per render (0 = one per CPU)")
	origins := flag.String("origins", "localhost:*", "comma separated websocket origin patterns")
	verbose := flag.Bool("v", false, "log render timings")
	flag.Parse()

	if *size <= 0 || *size > maxDisplay {
		return fmt.Errorf("size %d out of range (1..%d)", *size, maxDisplay)
	}
	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scheduler := render.NewScheduler(render.WithWorkers(*workers))
	defer scheduler.Close()

	// rpcServer lends the scheduler to remote sessions (cliclient, termview -server)
	rpcServer := newRPCServer(scheduler, maxDisplay)
	websocketListener := newWSListener(context.Background(), *addr+"/rpc")

	srv := webServer(*addr, handlerConfig{
		renderer: scheduler,
		size:     *size,
		origins:  strings.Split(*origins, ","),
		rpc:      websocketListener,
	})

	// TCP
	log.Printf("tcp listening on %s", *rpcAddr)
	tcpListener, err := net.Listen("tcp", *rpcAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 3)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	// irpcServer serves both tcp and websocket clients
	go func() {
		if err := rpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve tcp: %w", err)
		}
	}()
	go func() {
		if err := rpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve ws: %w", err)
		}
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	if err := rpcServer.Close(); err != nil {
		log.Printf("rpc close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("shutdown: %w", err))
	}
	return runErr
}
