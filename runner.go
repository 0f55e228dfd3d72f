package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Runner executes login attempts over the enumerated credential pairs,
// either sequentially or across a bounded pool of workers.
type Runner struct {
	cfg     *RunConfig
	client  *http.Client
	limiter *rate.Limiter
	sshMode bool

	mu        sync.Mutex
	results   []AttemptResult
	completed int
}

// NewRunner creates a runner for the given configuration
func NewRunner(cfg *RunConfig) *Runner {
	r := &Runner{
		cfg:     cfg,
		sshMode: isSSHTarget(cfg.URL),
	}
	if !r.sshMode {
		r.client = newHTTPClient(cfg)
	}
	if cfg.Rate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}
	return r
}

// Run attempts every job and returns one result per job
func (r *Runner) Run(jobs []Job) []AttemptResult {
	fmt.Printf("Starting %d login tests...\n", len(jobs))

	if r.cfg.Parallel {
		return r.runParallel(jobs)
	}
	return r.runSequential(jobs)
}

// attempt performs one login attempt, honoring the global rate cap
func (r *Runner) attempt(job Job) AttemptResult {
	if r.limiter != nil {
		_ = r.limiter.Wait(context.Background())
	}
	if r.sshMode {
		return trySSHLogin(r.cfg, job)
	}
	return tryHTTPLogin(r.client, r.cfg, job)
}

// pause sleeps the inter-attempt delay. With jitter enabled the sleep is
// drawn uniformly from [delay/2, 3*delay/2).
func (r *Runner) pause() {
	d := r.cfg.Delay
	if d <= 0 {
		return
	}
	if r.cfg.Jitter {
		d = jitteredDelay(d)
	}
	time.Sleep(d)
}

func jitteredDelay(d time.Duration) time.Duration {
	return d/2 + time.Duration(rand.Int63n(int64(d)))
}

// runSequential iterates jobs in enumeration order, pausing after every
// attempt except the last
func (r *Runner) runSequential(jobs []Job) []AttemptResult {
	results := make([]AttemptResult, 0, len(jobs))

	for i, job := range jobs {
		fmt.Printf("Testing %d/%d: %s:%s\n", i+1, len(jobs), job.Username, job.Password)

		result := r.attempt(job)
		results = append(results, result)
		printOutcome(result)

		if i < len(jobs)-1 {
			r.pause()
		}
	}

	return results
}

// runParallel feeds jobs through a shared queue to exactly MaxWorkers
// workers. Results are collected in completion order.
func (r *Runner) runParallel(jobs []Job) []AttemptResult {
	jobQueue := make(chan Job, r.cfg.MaxWorkers*2) // Buffer for better throughput
	r.results = make([]AttemptResult, 0, len(jobs))
	r.completed = 0

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.MaxWorkers; i++ {
		wg.Add(1)
		go r.worker(&wg, jobQueue, len(jobs))
	}

	for _, job := range jobs {
		jobQueue <- job
	}
	close(jobQueue)

	wg.Wait()
	return r.results
}

// worker consumes jobs until the queue closes, pacing itself between its
// own consecutive attempts. The delay is per-worker, not a global cap.
func (r *Runner) worker(wg *sync.WaitGroup, jobs <-chan Job, total int) {
	defer wg.Done()

	first := true
	for job := range jobs {
		if !first {
			r.pause()
		}
		first = false

		result := r.attempt(job)

		r.mu.Lock()
		r.results = append(r.results, result)
		r.completed++
		done := r.completed
		r.mu.Unlock()

		fmt.Printf("Completed %d/%d: %s:%s\n", done, total, job.Username, job.Password)
		printOutcome(result)
	}
}

// printOutcome emits the per-attempt result line
func printOutcome(result AttemptResult) {
	if result.Outcome == OutcomeError {
		fmt.Printf("  -> ERROR: %s\n", result.Err)
		return
	}
	fmt.Printf("  -> %s (Status: %d)\n", result.Outcome, result.StatusCode)
}
