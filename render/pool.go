package render

import "sync"

// bandPool is a fixed set of goroutines that outlives individual renders.
// Jobs go through one shared queue; runAll hands over a batch and waits for
// exactly that batch, so several renders may share the pool concurrently.
type bandPool struct {
	workers int
	jobs    chan func()

	// mu guards closed; runAll holds it for reading while it submits.
	mu     sync.RWMutex
	closed bool

	wg sync.WaitGroup
}

// newBandPool starts workers goroutines; workers must be positive.
func newBandPool(workers int) *bandPool {
	p := &bandPool{
		workers: workers,
		jobs:    make(chan func(), workers*2),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *bandPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// runAll executes every job on the pool and returns once all have finished.
// It reports false, running nothing, if the pool is closed.
func (p *bandPool) runAll(jobs []func()) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}

	var done sync.WaitGroup
	done.Add(len(jobs))
	for _, job := range jobs {
		p.jobs <- func() {
			defer done.Done()
			job()
		}
	}
	p.mu.RUnlock()

	done.Wait()
	return true
}

// close stops the workers after queued jobs drain. Safe to call twice.
func (p *bandPool) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
