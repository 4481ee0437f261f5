package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	fractal "github.com/marben/fractal_explorer"
)

// newRPCServer exposes r as a fractal.Renderer irpc service. Views larger
// than maxSize are refused before they reach r.
func newRPCServer(r fractal.Renderer, maxSize int) *irpc.Server {
	svc := fractal.NewRendererIrpcService(boundedRenderer{Renderer: r, max: maxSize})
	return irpc.NewServer(
		irpc.WithServices(svc),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("rpc connection from: %s", ep.RemoteAddr())
		}),
	)
}

// boundedRenderer rejects views wider than max pixels.
type boundedRenderer struct {
	fractal.Renderer
	max int
}

func (r boundedRenderer) Render(v fractal.View, mode fractal.Mode) (*fractal.PixelBuffer, error) {
	if v.Size > r.max {
		return nil, fmt.Errorf("size %d exceeds %d: %w", v.Size, r.max, fractal.ErrInvalidConfiguration)
	}
	return r.Renderer.Render(v, mode)
}

// rpcHandler upgrades the request and hands the websocket to l, where the
// irpc server accepts it like any other connection.
func rpcHandler(l *wsListener, origins []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: origins,
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server closing")
		}
	}
}

// wsListener implements net.Listener over websocket connections handed in
// by rpcHandler. Accepted connections carry binary messages.
type wsListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func newWSListener(ctx context.Context, addr string) *wsListener {
	ctx, cancel := context.WithCancel(ctx)
	return &wsListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *wsListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *wsListener) Addr() net.Addr {
	return l.addr
}

// Close stops accepting and tears down every connection accepted so far.
func (l *wsListener) Close() error {
	l.cancel()
	return nil
}

type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
