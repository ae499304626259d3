// Package transfer drives report acquisition from a device interrupt
// endpoint and recovers from transfer errors. It feeds every completed
// report into the translation pipeline through one entry point, whether the
// endpoint pushes asynchronously or is polled.
package transfer

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prepad/prepad/internal/loop"
)

const (
	// RecoveryDelay is the fixed gap between a failed transfer and its
	// resubmission, per the USB error handling convention.
	RecoveryDelay = 200 * time.Millisecond

	// PollInterval drives sync-poll mode.
	PollInterval = 8 * time.Millisecond

	// SyncPollTimeout bounds one synchronous transfer so a dead device
	// cannot stall sibling devices sharing the scheduler.
	SyncPollTimeout = 10 * time.Millisecond
)

// Endpoint errors the manager reacts to specifically.
var (
	ErrStall   = errors.New("endpoint stalled")
	ErrTimeout = errors.New("transfer timed out")
)

// Endpoint abstracts an interrupt-in endpoint.
type Endpoint interface {
	// SubmitAsync registers a continuous asynchronous interrupt transfer.
	// The handler is invoked per completion with the report bytes, or
	// with a non-nil error on a failed transfer.
	SubmitAsync(handler func(data []byte, err error)) error
	// CancelAsync deletes the outstanding asynchronous transfer.
	CancelAsync() error
	// Poll performs one bounded synchronous transfer into buf.
	Poll(buf []byte, timeout time.Duration) (int, error)
	// ClearHalt clears a stall condition on the endpoint.
	ClearHalt() error
}

// Mode selects the acquisition strategy.
type Mode int

const (
	// ModeAsync uses a continuous asynchronous interrupt transfer.
	ModeAsync Mode = iota
	// ModeSyncPoll issues bounded synchronous transfers on a fixed tick,
	// for devices that never push async data.
	ModeSyncPoll
)

func (m Mode) String() string {
	if m == ModeSyncPoll {
		return "sync-poll"
	}
	return "async"
}

// State of the lifecycle machine.
type State int32

const (
	StateIdle State = iota
	StatePolling
	StateError
	StateRecovering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateError:
		return "error"
	case StateRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Manager runs the Polling -> Error -> Recovering -> Polling lifecycle for
// one endpoint. All callbacks execute on the device loop; nothing here
// runs concurrently with the report handler.
type Manager struct {
	ep     Endpoint
	mode   Mode
	loop   *loop.Loop
	logger *slog.Logger

	// handler receives every successfully acquired report.
	handler func(data []byte)
	// onError runs once per failed transfer, before recovery is
	// scheduled. Used to stop repeat-key generation.
	onError func()

	state    atomic.Int32
	recovery *loop.Timer
	ticker   *loop.Ticker
	pollBuf  []byte
}

// NewManager wires a lifecycle manager. maxPacket sizes the poll buffer for
// sync-poll mode. onError may be nil.
func NewManager(ep Endpoint, mode Mode, lp *loop.Loop, maxPacket int, handler func([]byte), onError func(), logger *slog.Logger) *Manager {
	m := &Manager{
		ep:      ep,
		mode:    mode,
		loop:    lp,
		logger:  logger,
		handler: handler,
		onError: onError,
		pollBuf: make([]byte, maxPacket),
	}
	m.recovery = lp.NewTimer(m.recover)
	return m
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Start begins acquisition.
func (m *Manager) Start() error {
	switch m.mode {
	case ModeAsync:
		if err := m.ep.SubmitAsync(m.completion); err != nil {
			return err
		}
	case ModeSyncPoll:
		m.ticker = m.loop.NewTicker(PollInterval, m.pollOnce)
	}
	m.state.Store(int32(StatePolling))
	return nil
}

// Stop halts acquisition and pending recovery.
func (m *Manager) Stop() {
	m.recovery.Cancel()
	if m.ticker != nil {
		m.ticker.Stop()
	}
	if m.mode == ModeAsync {
		if err := m.ep.CancelAsync(); err != nil {
			m.logger.Debug("cancelling async transfer", "error", err)
		}
	}
	m.state.Store(int32(StateIdle))
}

// completion is the async transfer callback. The endpoint may invoke it
// from any goroutine; it serializes onto the device loop.
func (m *Manager) completion(data []byte, err error) {
	report := make([]byte, len(data))
	copy(report, data)
	m.loop.Post(func() {
		if err != nil {
			m.fail(err)
			return
		}
		m.handler(report)
	})
}

// pollOnce runs on the loop each tick in sync-poll mode.
func (m *Manager) pollOnce() {
	if m.State() != StatePolling {
		return
	}
	n, err := m.ep.Poll(m.pollBuf, SyncPollTimeout)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			// No data this tick.
			return
		}
		m.fail(err)
		return
	}
	if n == 0 {
		return
	}
	m.handler(m.pollBuf[:n])
}

// fail transitions through Error into Recovering and schedules the delayed
// resubmission. A second failure before the delay fires reschedules rather
// than stacking retries.
func (m *Manager) fail(err error) {
	m.state.Store(int32(StateError))
	m.logger.Warn("transfer failed", "error", err)

	if m.onError != nil {
		m.onError()
	}

	if errors.Is(err, ErrStall) {
		if cerr := m.ep.ClearHalt(); cerr != nil {
			m.logger.Warn("clearing endpoint halt", "error", cerr)
		}
	}

	if m.mode == ModeAsync {
		if cerr := m.ep.CancelAsync(); cerr != nil {
			m.logger.Debug("cancelling failed transfer", "error", cerr)
		}
	}

	m.state.Store(int32(StateRecovering))
	m.recovery.Reset(RecoveryDelay)
}

// recover resubmits the transfer after the delay, returning to Polling.
func (m *Manager) recover() {
	if m.State() != StateRecovering {
		return
	}
	if m.mode == ModeAsync {
		if err := m.ep.SubmitAsync(m.completion); err != nil {
			m.logger.Warn("resubmitting transfer", "error", err)
			m.fail(err)
			return
		}
	}
	m.state.Store(int32(StatePolling))
	m.logger.Debug("transfer recovered")
}
