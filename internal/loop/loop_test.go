package loop_test

import (
	"testing"
	"time"

	"github.com/prepad/prepad/internal/loop"

	"github.com/stretchr/testify/assert"
)

func TestPostRunsSerialized(t *testing.T) {
	l := loop.New()
	defer l.Close()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	l.Post(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not drain")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestPostAfterCloseIsDiscarded(t *testing.T) {
	l := loop.New()
	l.Close()
	l.Close() // idempotent

	// Must not block or panic.
	l.Post(func() { t.Error("job ran after close") })
	time.Sleep(20 * time.Millisecond)
}

func TestTimerFires(t *testing.T) {
	l := loop.New()
	defer l.Close()

	fired := make(chan struct{}, 1)
	timer := l.NewTimer(func() { fired <- struct{}{} })
	timer.Reset(10 * time.Millisecond)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTimerCancel(t *testing.T) {
	l := loop.New()
	defer l.Close()

	fired := make(chan struct{}, 1)
	timer := l.NewTimer(func() { fired <- struct{}{} })

	timer.Cancel() // unarmed cancel is a no-op

	timer.Reset(30 * time.Millisecond)
	timer.Cancel()
	timer.Cancel() // idempotent

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestTimerResetReplacesPendingFire(t *testing.T) {
	l := loop.New()
	defer l.Close()

	fired := make(chan time.Time, 4)
	timer := l.NewTimer(func() { fired <- time.Now() })

	// Two resets must produce exactly one fire, timed from the second.
	timer.Reset(30 * time.Millisecond)
	timer.Reset(100 * time.Millisecond)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	select {
	case <-fired:
		t.Fatal("superseded reset fired too")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestTickerTicks(t *testing.T) {
	l := loop.New()
	defer l.Close()

	ticks := make(chan struct{}, 16)
	tk := l.NewTicker(10*time.Millisecond, func() { ticks <- struct{}{} })

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("ticker stalled")
		}
	}

	tk.Stop()
	tk.Stop() // idempotent
}
