package main

import (
	"net"
	"strings"
	"testing"

	"github.com/marben/irpc"

	fractal "github.com/marben/fractal_explorer"
	"github.com/marben/fractal_explorer/render"
	"github.com/marben/fractal_explorer/session"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want session.Command
	}{
		{"zoom:3", session.Command{Op: session.OpZoom, Steps: 3}},
		{"zoom@1:-2", session.Command{Op: session.OpZoom, Panel: session.PanelJulia, Steps: -2}},
		{"pan:10,20", session.Command{Op: session.OpPan, X: 10, Y: 20}},
		{"iterations:+", session.Command{Op: session.OpIterations, Increase: true}},
		{"iterations:-", session.Command{Op: session.OpIterations}},
		{"reset@1", session.Command{Op: session.OpReset, Panel: session.PanelJulia}},
		{"landmark:4", session.Command{Op: session.OpLandmark, ID: 4}},
		{"render", session.Command{Op: "render"}},
	}
	for _, tt := range tests {
		got, err := parseCommand(tt.in)
		if err != nil {
			t.Errorf("parseCommand(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCommand(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"pan:10", "zoom:x", "zoom@a:1", "resize:big"} {
		if _, err := parseCommand(bad); err == nil {
			t.Errorf("parseCommand(%q) succeeded", bad)
		}
	}
}

func TestReplay_RendersThroughRemoteRenderer(t *testing.T) {
	sched := render.NewScheduler(render.WithWorkers(3))
	defer sched.Close()

	clientConn, serverConn := net.Pipe()
	serverEp := irpc.NewEndpoint(serverConn, irpc.WithEndpointServices(fractal.NewRendererIrpcService(sched)))
	defer serverEp.Close()
	clientEp := irpc.NewEndpoint(clientConn)
	defer clientEp.Close()

	client, err := fractal.NewRendererIrpcClient(clientEp)
	if err != nil {
		t.Fatal(err)
	}

	cmds := []session.Command{
		{Op: session.OpZoom, Steps: 1},
		{Op: session.OpEvaluator, ID: 42},
		{Op: session.OpIterations, Panel: session.PanelJulia, Increase: true},
		{Op: opRender},
	}
	var out strings.Builder
	if err := replay(&out, client, 24, cmds); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"initial:\n",
		"1 zoom:\n",
		"mag=1.5 iter=100",
		"2 evaluator: error:",
		"3 iterations:\n",
		"iter=111",
		"4 render:\n",
		"frame 24x24",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "frame 24x24"); n != 8 {
		t.Errorf("%d frames rendered, want 8:\n%s", n, got)
	}
}
