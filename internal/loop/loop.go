// Package loop provides a single-goroutine run-to-completion executor.
// Everything posted to one Loop runs serialized: report handlers, repeat
// ticks and recovery callbacks for a device never overlap.
package loop

import (
	"sync"
	"time"
)

// Loop executes posted functions one at a time on a dedicated goroutine.
type Loop struct {
	jobs chan func()
	done chan struct{}
	stop sync.Once
	wg   sync.WaitGroup
}

// New starts a loop.
func New() *Loop {
	l := &Loop{
		jobs: make(chan func(), 64),
		done: make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case fn := <-l.jobs:
			fn()
		case <-l.done:
			return
		}
	}
}

// Post queues fn for execution on the loop goroutine. Posting to a closed
// loop discards fn.
func (l *Loop) Post(fn func()) {
	select {
	case l.jobs <- fn:
	case <-l.done:
	}
}

// Close stops the loop. Queued but unexecuted jobs are dropped. Safe to
// call more than once.
func (l *Loop) Close() {
	l.stop.Do(func() { close(l.done) })
	l.wg.Wait()
}

// Timer schedules a one-shot callback on the loop. Reset replaces any
// pending expiration rather than stacking; Cancel is idempotent and a no-op
// on an unset timer. A fire that raced with Cancel or Reset is discarded.
type Timer struct {
	loop *Loop
	fn   func()

	mu  sync.Mutex
	t   *time.Timer
	gen uint64
}

// NewTimer creates an unarmed timer whose callback runs on the loop.
func (l *Loop) NewTimer(fn func()) *Timer {
	return &Timer{loop: l, fn: fn}
}

// Reset arms the timer to fire once after d, replacing any pending fire.
func (t *Timer) Reset(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	gen := t.gen
	if t.t != nil {
		t.t.Stop()
	}
	t.t = time.AfterFunc(d, func() {
		t.loop.Post(func() {
			t.mu.Lock()
			live := gen == t.gen
			t.mu.Unlock()
			if live {
				t.fn()
			}
		})
	})
}

// Cancel disarms the timer.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

// Ticker runs a callback on the loop at a fixed interval until stopped.
type Ticker struct {
	stop sync.Once
	done chan struct{}
}

// NewTicker starts a periodic callback on the loop.
func (l *Loop) NewTicker(interval time.Duration, fn func()) *Ticker {
	tk := &Ticker{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Post(fn)
			case <-tk.done:
				return
			case <-l.done:
				return
			}
		}
	}()
	return tk
}

// Stop ends the ticker. Idempotent.
func (tk *Ticker) Stop() {
	tk.stop.Do(func() { close(tk.done) })
}
