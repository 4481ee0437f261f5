package main

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	fractal "github.com/marben/fractal_explorer"
)

//go:embed static
var staticFiles embed.FS

type handlerConfig struct {
	renderer fractal.Renderer
	size     int      // initial panel size
	origins  []string // websocket.AcceptOptions.OriginPatterns
	rpc      *wsListener
}

// webServer creates the http server: static page at /, the explorer
// websocket at /ws and, when cfg.rpc is set, the irpc websocket at /rpc.
func webServer(addr string, cfg handlerConfig) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", addr)
	return srv
}

func newMux(cfg handlerConfig) *http.ServeMux {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded directory always exists
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	if cfg.rpc != nil {
		mux.HandleFunc("/rpc", rpcHandler(cfg.rpc, cfg.origins))
	}
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

// websocketHandler upgrades the request and runs one explorer session on it
// until the peer goes away.
func websocketHandler(cfg handlerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: cfg.origins,
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("got connection from: %s", r.RemoteAddr)
		err = serveConn(r.Context(), c, cfg)
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			log.Printf("%s disconnected", r.RemoteAddr)
			return
		}
		if err != nil {
			log.Printf("err: session %q: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "session failed")
		}
	}
}
