package pool

import (
	"log/slog"
	"runtime/debug"
	"sync"
)

// Queue depth before Submit starts blocking on busy workers.
const jobQueueDepth = 2048

// Job is a one-shot unit of work. It is executed exactly once by a single
// worker and discarded afterwards.
type Job func()

// Pool owns a fixed set of worker goroutines and the sending half of the
// job channel. Workers are spawned eagerly at construction and only exit
// on Close.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New creates a pool with the given number of workers. The count must be in
// range [1, 256); anything else is a programming error and panics. The upper
// bound guards against disastrous allocations of worker goroutines.
func New(workers int) *Pool {
	if workers < 1 || workers >= 256 {
		panic("pool: workers must be in range [1, 256)")
	}

	p := &Pool{
		jobs: make(chan Job, jobQueueDepth),
	}

	for id := range workers {
		p.wg.Add(1)
		go p.work(id)
	}

	return p
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		slog.Debug("worker received a job", "worker", id)
		run(job)
	}

	slog.Debug("worker could not receive a job, shutting down", "worker", id)
}

// run executes one job, recovering a panic so it cannot take down the
// process or permanently shrink the pool.
func run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("job panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	job()
}

// Submit enqueues a job for execution by exactly one worker. Submitting to a
// closed pool never panics the caller: the job is logged and dropped.
func (p *Pool) Submit(job Job) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		slog.Error("pool is closed, dropping job")
		return
	}

	p.jobs <- job
}

// Close closes the sending half of the job channel and blocks until every
// worker has drained the queue and exited. A second Close is a no-op.
func (p *Pool) Close() {
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
