// Copyright 2025 The go-equalize Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for processing
// independent items in parallel. A Pool is created once per batch and
// reused for every image, so per-image work pays no goroutine spawn cost.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ForEach(ctx, len(paths), func(ctx context.Context, i int) {
//	    results[i] = process(ctx, paths[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines fed through a channel. Workers are
// started by New and exit on Close.
type Pool struct {
	size   int
	tasks  chan task
	once   sync.Once
	closed atomic.Bool
}

// task is one worker's share of a ForEach call: it drains indices from the
// shared counter until none remain.
type task struct {
	drain func()
	done  *sync.WaitGroup
}

// New starts a pool of size workers. A size <= 0 uses GOMAXPROCS.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		size:  size,
		tasks: make(chan task, size),
	}
	for range size {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.drain()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.size
}

// Close stops the workers after pending work completes. It is safe to call
// more than once; a closed pool runs ForEach on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ForEach calls fn for every index in [0, n) and blocks until all calls
// return. Indices are claimed one at a time from a shared counter, which
// keeps workers busy when items take different times (images of different
// sizes).
//
// Once ctx is done no further indices are started and ctx.Err() is
// returned. Calls already running complete normally.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	var next atomic.Int64
	drain := func() {
		for ctx.Err() == nil {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(ctx, i)
		}
	}

	workers := min(p.size, n)
	if workers == 1 || p.closed.Load() {
		drain()
		return ctx.Err()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{drain: drain, done: &wg}
	}
	wg.Wait()
	return ctx.Err()
}
