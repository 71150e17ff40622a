package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
)

// Task fetches and parses one posting. A nil job with a nil error means
// the posting was skipped (for example an expired listing).
type Task func(ctx context.Context) (*job.Job, error)

type Result struct {
	Job *job.Job
	Err error
}

// WorkerPool runs detail-page fetches concurrently with an optional
// shared rate limit, so a burst of postings does not hammer a source.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts across all workers at rps per second.
// Zero or negative removes the limit.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	if rps <= 0 {
		return
	}
	interval := time.Second / time.Duration(rps)
	t := time.NewTicker(interval)
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close stops the rate limiter and signals workers to drain and exit.
// Submit must not be called after Close.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns the result stream. The channel
// closes once Close has been called and all submitted tasks finished.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 64
	if buf < 1 {
		buf = 1
	}
	out := make(chan Result, buf)
	if p == nil {
		close(out)
		return out
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					j, err := t(ctx)
					if j == nil && err == nil {
						continue
					}
					select {
					case <-ctx.Done():
						return
					case out <- Result{Job: j, Err: err}:
					}
				}
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(out)
		close(finished)
	}()

	// After a cancel the workers are gone, so keep consuming tasks
	// until Close lands; otherwise a submitter blocks forever.
	go func() {
		select {
		case <-finished:
		case <-ctx.Done():
			for range p.tasks {
			}
		}
	}()

	return out
}
