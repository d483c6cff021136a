// Package worker parses game texts on several goroutines and hands the
// games back in input order.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pgn-tree-go/internal/game"
	"github.com/lgbarn/pgn-tree-go/internal/hashing"
	"github.com/lgbarn/pgn-tree-go/internal/parser"
)

// Result is the outcome of parsing one game text.
type Result struct {
	Text      parser.GameText
	Game      *game.Game // nil on error
	Signature hashing.GameSignature
	Duplicate bool // an earlier game ended in the same position
	Error     error
}

// Task turns one game text into a Result.
type Task func(parser.GameText) Result

// Pool runs a Task over a list of game texts. Results arrive in completion
// order; use Ordered to read them back by GameText.Number.
type Pool struct {
	task    Task
	workers int
	texts   chan parser.GameText
	results chan Result
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool creates a pool of workers goroutines, at least one.
func NewPool(task Task, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		task:    task,
		workers: workers,
		texts:   make(chan parser.GameText, workers),
		results: make(chan Result, 2*workers),
	}
}

// Start feeds texts to the workers. The results channel is closed once
// every submitted text has been handled.
func (p *Pool) Start(texts []parser.GameText) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}

	go func() {
		for _, text := range texts {
			if p.Stopped() {
				break
			}
			p.texts <- text
		}
		close(p.texts)
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *Pool) work() {
	defer p.wg.Done()
	for text := range p.texts {
		if p.Stopped() {
			continue
		}
		p.results <- p.task(text)
	}
}

// Stop makes the workers skip the texts still queued. Results already
// produced are delivered.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Results returns the channel of results in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Ordered reads results until the channel is closed and calls fn on them
// by ascending GameText.Number, starting at first. Numbers must be
// consecutive; a result arriving early waits for its predecessors.
//
// After fn returns an error, fn is not called again, the channel is still
// drained and the error is returned.
func Ordered(results <-chan Result, first int, fn func(Result) error) error {
	pending := make(map[int]Result)
	next := first
	var err error
	for r := range results {
		if err != nil {
			continue
		}
		pending[r.Text.Number] = r
		for err == nil {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			err = fn(ready)
		}
	}
	return err
}
