package render

import (
	"bytes"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	fractal "github.com/marben/fractal_explorer"
)

func testView(t testing.TB, size int) fractal.View {
	t.Helper()
	v, err := fractal.NewView(size)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestScheduler_DeterministicAcrossWorkerCounts(t *testing.T) {
	base := testView(t, 97).Pan(fractal.Complex{R: -0.5, I: 0.1}).Zoom(2)
	views := []struct {
		name string
		v    fractal.View
		mode fractal.Mode
	}{
		{"mandelbrot", base, fractal.ModeMandelbrot},
		{"julia", base.Reset().WithSeed(fractal.Complex{R: -0.8, I: 0.156}), fractal.ModeJulia},
		{"burning ship banded", func() fractal.View {
			v := base
			v.Evaluator = fractal.EvaluatorBurningShip
			v.Colormap = fractal.ColormapBanded
			return v
		}(), fractal.ModeMandelbrot},
		{"cubic reciprocal", func() fractal.View {
			v := base.Reset()
			v.Evaluator = fractal.EvaluatorCubicReciprocal
			return v
		}(), fractal.ModeMandelbrot},
	}

	for _, tt := range views {
		t.Run(tt.name, func(t *testing.T) {
			var ref []byte
			for _, workers := range []int{1, 2, 7, 24, 200} {
				s := NewScheduler(WithWorkers(workers))
				buf, err := s.Render(tt.v, tt.mode)
				s.Close()
				if err != nil {
					t.Fatal(err)
				}
				if ref == nil {
					ref = buf.Pix
					continue
				}
				if !bytes.Equal(ref, buf.Pix) {
					t.Fatalf("%d workers: buffer differs from 1 worker", workers)
				}
			}
		})
	}
}

func TestScheduler_MatchesPerPixelPipeline(t *testing.T) {
	s := NewScheduler(WithWorkers(5))
	defer s.Close()

	v := testView(t, 40)
	ev, _ := v.Evaluator.Evaluator()
	cm, _ := v.Colormap.Colormap()

	buf, err := s.Render(v, fractal.ModeMandelbrot)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < v.Size; y++ {
		for x := 0; x < v.Size; x++ {
			c, _ := v.PixelToPoint(x, y)
			want := cm.Colorize(ev.Escape(c.R, c.I, v.MaxIterations, 0, 0), v.MaxIterations)
			if got := buf.RGBAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestScheduler_JuliaBindsPixelToStart(t *testing.T) {
	s := NewScheduler()
	defer s.Close()

	seed := fractal.Complex{R: 0.285, I: 0.01}
	v := testView(t, 32).WithSeed(seed)
	ev, _ := v.Evaluator.Evaluator()
	cm, _ := v.Colormap.Colormap()

	buf, err := s.Render(v, fractal.ModeJulia)
	if err != nil {
		t.Fatal(err)
	}
	for _, px := range [][2]int{{0, 0}, {16, 16}, {5, 27}, {31, 3}} {
		z, _ := v.PixelToPoint(px[0], px[1])
		want := cm.Colorize(ev.Escape(seed.R, seed.I, v.MaxIterations, z.R, z.I), v.MaxIterations)
		if got := buf.RGBAt(px[0], px[1]); got != want {
			t.Errorf("pixel %v = %v, want %v", px, got, want)
		}
	}

	// Pixel (0,0) starts at -2-2i, already outside the radius.
	if got, want := buf.RGBAt(0, 0), cm.Colorize(0, v.MaxIterations); got != want {
		t.Errorf("corner pixel = %v, want escape-at-0 colour %v", got, want)
	}
}

func TestScheduler_ResizeChangesDimensions(t *testing.T) {
	s := NewScheduler()
	defer s.Close()

	v := testView(t, 16)
	for _, size := range []int{1, 5, 33, 128} {
		r, err := v.Resize(size)
		if err != nil {
			t.Fatal(err)
		}
		buf, err := s.Render(r, fractal.ModeMandelbrot)
		if err != nil {
			t.Fatal(err)
		}
		if buf.Size != size || len(buf.Pix) != size*size*3 || buf.Bounds().Dx() != size {
			t.Errorf("Resize(%d) rendered %d×%d (%d bytes)", size, buf.Size, buf.Size, len(buf.Pix))
		}
	}
}

func TestScheduler_RejectsInvalidViews(t *testing.T) {
	var bands atomic.Int64
	s := NewScheduler(WithOnBandRendered(func(Band) { bands.Add(1) }))
	defer s.Close()

	good := testView(t, 8)
	tests := []struct {
		name string
		v    fractal.View
		mode fractal.Mode
		want error
	}{
		{"zero size", func() fractal.View { v := good; v.Size = 0; return v }(), fractal.ModeMandelbrot, fractal.ErrInvalidConfiguration},
		{"zero cap", func() fractal.View { v := good; v.MaxIterations = 0; return v }(), fractal.ModeMandelbrot, fractal.ErrInvalidConfiguration},
		{"zero magnification", func() fractal.View { v := good; v.Magnification = 0; return v }(), fractal.ModeJulia, fractal.ErrInvalidConfiguration},
		{"bad mode", good, fractal.Mode(9), fractal.ErrInvalidConfiguration},
		{"bad evaluator", func() fractal.View { v := good; v.Evaluator = 42; return v }(), fractal.ModeMandelbrot, fractal.ErrUnknownEvaluator},
		{"bad colormap", func() fractal.View { v := good; v.Colormap = -3; return v }(), fractal.ModeMandelbrot, fractal.ErrUnknownColormap},
	}
	for _, tt := range tests {
		buf, err := s.Render(tt.v, tt.mode)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
		if buf != nil {
			t.Errorf("%s: returned a buffer", tt.name)
		}
	}
	if n := bands.Load(); n != 0 {
		t.Errorf("%d bands rendered for rejected views", n)
	}
}

func TestScheduler_OnBandRendered(t *testing.T) {
	var mu sync.Mutex
	var rows int
	s := NewScheduler(WithWorkers(6), WithOnBandRendered(func(b Band) {
		mu.Lock()
		rows += b.Rows()
		mu.Unlock()
	}))
	defer s.Close()

	if _, err := s.Render(testView(t, 50), fractal.ModeMandelbrot); err != nil {
		t.Fatal(err)
	}
	if rows != 50 {
		t.Errorf("hook saw %d rows, want 50", rows)
	}
}

func TestScheduler_ConcurrentRenders(t *testing.T) {
	s := NewScheduler(WithWorkers(4))
	defer s.Close()

	v := testView(t, 48)
	want, err := s.Render(v, fractal.ModeMandelbrot)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Render(v, fractal.ModeMandelbrot)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got.Pix, want.Pix) {
				errs <- errors.New("concurrent render differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestScheduler_Closed(t *testing.T) {
	s := NewScheduler()
	s.Close()
	if _, err := s.Render(testView(t, 4), fractal.ModeMandelbrot); !errors.Is(err, ErrSchedulerClosed) {
		t.Errorf("err = %v, want ErrSchedulerClosed", err)
	}
}

func TestScheduler_DefaultWorkers(t *testing.T) {
	s := NewScheduler(WithWorkers(-1))
	defer s.Close()
	if s.Workers() != DefaultWorkers {
		t.Errorf("Workers() = %d, want %d", s.Workers(), DefaultWorkers)
	}
}

func TestScheduler_WorkerPerCPU(t *testing.T) {
	s := NewScheduler(WithWorkers(0))
	defer s.Close()

	want := runtime.GOMAXPROCS(0)
	if s.Workers() != want || s.pool.workers != want {
		t.Errorf("Workers() = %d, pool %d, want %d (GOMAXPROCS)", s.Workers(), s.pool.workers, want)
	}
	if _, err := s.Render(testView(t, 16), fractal.ModeMandelbrot); err != nil {
		t.Fatal(err)
	}
}

func BenchmarkScheduler_Render256(b *testing.B) {
	s := NewScheduler()
	defer s.Close()
	v := testView(b, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Render(v, fractal.ModeMandelbrot); err != nil {
			b.Fatal(err)
		}
	}
}
