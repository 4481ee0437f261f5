// Package render fills pixel buffers in parallel. A Scheduler splits the
// output grid into row bands and evaluates each band on a persistent pool of
// workers; every band owns a disjoint slice of the buffer, so no locking is
// needed on the pixels.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	fractal "github.com/marben/fractal_explorer"
)

// DefaultWorkers is the number of bands (and pool goroutines) per render.
const DefaultWorkers = 24

var ErrSchedulerClosed = errors.New("scheduler closed")

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWorkers sets the worker count. Zero means one worker per CPU
// (GOMAXPROCS); negative values keep the default.
func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		switch {
		case n > 0:
			s.workers = n
		case n == 0:
			s.workers = runtime.GOMAXPROCS(0)
		}
	}
}

// WithOnBandRendered installs a hook called from the worker goroutine after
// each band is written. It must be safe for concurrent use.
func WithOnBandRendered(fn func(Band)) Option {
	return func(s *Scheduler) { s.onBand = fn }
}

// Scheduler renders views on a persistent worker pool. It is safe for
// concurrent use; Close releases the pool.
type Scheduler struct {
	workers int
	onBand  func(Band)
	pool    *bandPool
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(s)
	}
	s.pool = newBandPool(s.workers)
	fractal.Logger().Info("render scheduler started", slog.Int("workers", s.workers))
	return s
}

var _ fractal.Renderer = (*Scheduler)(nil)

// Workers returns the number of bands each render is split into.
func (s *Scheduler) Workers() int { return s.workers }

// Render computes v in the given mode and returns a new Size×Size buffer.
// The view and the selected evaluator and colormap are checked before any
// work starts. Render blocks until every band is written.
func (s *Scheduler) Render(v fractal.View, mode fractal.Mode) (*fractal.PixelBuffer, error) {
	start := time.Now()

	job, err := newFrameJob(v, mode)
	if err != nil {
		return nil, err
	}

	buf := fractal.NewPixelBuffer(v.Size)
	bands := splitRows(v.Size, s.workers)
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			job.fill(buf.Rows(band.Y0, band.Y1), band)
			if s.onBand != nil {
				s.onBand(band)
			}
		}
	}

	if !s.pool.runAll(work) {
		return nil, ErrSchedulerClosed
	}

	fractal.Logger().Debug("rendered frame",
		slog.String("mode", mode.String()),
		slog.Int("size", v.Size),
		slog.Int("bands", len(bands)),
		slog.Int("maxIterations", v.MaxIterations),
		slog.Duration("took", time.Since(start)))
	return buf, nil
}

// Close stops the worker pool. Later Render calls fail with ErrSchedulerClosed.
func (s *Scheduler) Close() {
	s.pool.close()
}

// frameJob is everything a band worker reads. It is built once per render
// and never written afterwards.
type frameJob struct {
	mode      fractal.Mode
	maxIter   int
	seed      fractal.Complex
	xs, ys    []float64
	evaluator fractal.Evaluator
	colormap  fractal.Colormap
}

func newFrameJob(v fractal.View, mode fractal.Mode) (*frameJob, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if mode != fractal.ModeMandelbrot && mode != fractal.ModeJulia {
		return nil, fmt.Errorf("render: mode %d: %w", int(mode), fractal.ErrInvalidConfiguration)
	}
	ev, err := v.Evaluator.Evaluator()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	cm, err := v.Colormap.Colormap()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	xs, err := fractal.PlaneAxis(v, v.OriginX)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	ys, err := fractal.PlaneAxis(v, v.OriginY)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &frameJob{
		mode:      mode,
		maxIter:   v.MaxIterations,
		seed:      v.Seed(),
		xs:        xs,
		ys:        ys,
		evaluator: ev,
		colormap:  cm,
	}, nil
}

// fill writes the rows of band into pix, which holds exactly those rows.
func (j *frameJob) fill(pix []uint8, band Band) {
	i := 0
	for y := band.Y0; y < band.Y1; y++ {
		im := j.ys[y]
		for _, re := range j.xs {
			var n int
			if j.mode == fractal.ModeJulia {
				n = j.evaluator.Escape(j.seed.R, j.seed.I, j.maxIter, re, im)
			} else {
				n = j.evaluator.Escape(re, im, j.maxIter, 0, 0)
			}
			c := j.colormap.Colorize(n, j.maxIter)
			pix[i], pix[i+1], pix[i+2] = c.R, c.G, c.B
			i += 3
		}
	}
}
