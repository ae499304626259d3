package input

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prepad/prepad/report"

	"github.com/stretchr/testify/assert"
)

type fakeTimer struct {
	cancels int
	resets  []time.Duration
}

func (f *fakeTimer) Cancel()               { f.cancels++ }
func (f *fakeTimer) Reset(d time.Duration) { f.resets = append(f.resets, d) }

type passNormalizer struct{}

func (passNormalizer) Normalize(raw []byte) (report.Report, error) {
	var r report.Report
	return r, r.UnmarshalBinary(raw)
}

type failNormalizer struct{}

func (failNormalizer) Normalize(raw []byte) (report.Report, error) {
	return report.Report{}, errors.New("garbled")
}

func testController(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.Sanitize(logger)
	return New(cfg, passNormalizer{}, logger)
}

func drain(c *Controller) []KeyTransition {
	var out []KeyTransition
	for {
		kt, ok := c.PopKey()
		if !ok {
			return out
		}
		out = append(out, kt)
	}
}

func TestButtonEdges(t *testing.T) {
	c := testController(nil)

	// A press maps to Enter down; holding produces nothing; release maps up.
	c.HandleReport(report.Report{Buttons: report.ButtonA})
	assert.Equal(t, []KeyTransition{{Code: 0x28, Down: true}}, drain(c))

	c.HandleReport(report.Report{Buttons: report.ButtonA})
	assert.Empty(t, drain(c))

	c.HandleReport(report.Report{})
	assert.Equal(t, []KeyTransition{{Code: 0x28, Down: false}}, drain(c))
}

func TestSimultaneousButtonEdges(t *testing.T) {
	c := testController(nil)

	c.HandleReport(report.Report{Buttons: report.ButtonA | report.ButtonB})
	got := drain(c)
	assert.Equal(t, []KeyTransition{
		{Code: 0x28, Down: true}, // A -> Enter
		{Code: 0x29, Down: true}, // B -> Escape
	}, got)

	// Swap: A releases, X presses in the same report.
	c.HandleReport(report.Report{Buttons: report.ButtonB | report.ButtonX})
	got = drain(c)
	assert.Equal(t, []KeyTransition{
		{Code: 0x28, Down: false},
		{Code: 0x2A, Down: true}, // X -> Backspace
	}, got)
}

func TestDisabledButtonIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ButtonMap[0] = MappingDisabled
	c := testController(cfg)

	c.HandleReport(report.Report{Buttons: report.ButtonDPadUp})
	assert.Empty(t, drain(c))
}

func TestTriggerThreshold(t *testing.T) {
	c := testController(nil) // threshold 128, RT -> left mouse button

	c.HandleReport(report.Report{RT: 128})
	assert.False(t, c.Pointer().Left, "threshold value itself is not a press")

	c.HandleReport(report.Report{RT: 129})
	assert.True(t, c.Pointer().Left)

	// Held above threshold: no edge, state unchanged.
	c.HandleReport(report.Report{RT: 255})
	assert.True(t, c.Pointer().Left)

	c.HandleReport(report.Report{RT: 128})
	assert.False(t, c.Pointer().Left)
}

func TestTriggerKeyMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftTriggerKey = 0x2C // Space
	c := testController(cfg)

	c.HandleReport(report.Report{LT: 200})
	assert.Equal(t, []KeyTransition{{Code: 0x2C, Down: true}}, drain(c))

	c.HandleReport(report.Report{})
	assert.Equal(t, []KeyTransition{{Code: 0x2C, Down: false}}, drain(c))
}

func TestStickKeysMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftStick.Mode = StickKeys
	cfg.RightStick.Mode = StickDisabled
	c := testController(cfg)

	c.HandleReport(report.Report{LY: 20000})
	assert.Equal(t, []KeyTransition{{Code: 0x52, Down: true}}, drain(c), "up arrow press")

	// Swing to the right: up releases, right presses.
	c.HandleReport(report.Report{LX: 20000})
	assert.Equal(t, []KeyTransition{
		{Code: 0x52, Down: false},
		{Code: 0x4F, Down: true},
	}, drain(c))

	c.HandleReport(report.Report{})
	assert.Equal(t, []KeyTransition{{Code: 0x4F, Down: false}}, drain(c))
}

func TestStickMouseMode(t *testing.T) {
	c := testController(nil) // left stick mouse by default

	c.HandleReport(report.Report{LX: 20000})
	p := c.Pointer()
	assert.Equal(t, int32(2), p.DX)
	assert.Zero(t, p.DY)

	// Pointer deltas are per-report snapshots.
	c.HandleReport(report.Report{})
	p = c.Pointer()
	assert.Zero(t, p.DX)
	assert.Zero(t, p.DY)
}

func TestStickScrollMode(t *testing.T) {
	c := testController(nil) // right stick scroll by default

	c.HandleReport(report.Report{RY: 32767})
	assert.Equal(t, int32(-10), c.Pointer().DZ)

	c.HandleReport(report.Report{})
	assert.Zero(t, c.Pointer().DZ)
}

func TestReportClearsRepeatKey(t *testing.T) {
	c := testController(nil)
	timer := &fakeTimer{}
	c.SetRepeatTimer(timer)

	// A repeat key armed by another producer is cleared by any report.
	c.repeatKey = 0x28
	c.HandleReport(report.Report{})
	assert.Zero(t, c.repeatKey)
	assert.Equal(t, 1, timer.cancels)

	// With nothing armed, the tick is a no-op.
	c.RepeatTick()
	assert.Empty(t, drain(c))
	assert.Empty(t, timer.resets)
}

func TestRepeatTickReinjects(t *testing.T) {
	c := testController(nil)
	timer := &fakeTimer{}
	c.SetRepeatTimer(timer)

	c.repeatKey = 0x2C
	c.RepeatTick()
	assert.Equal(t, []KeyTransition{{Code: 0x2C, Down: true}}, drain(c))
	assert.Equal(t, []time.Duration{RepeatRate}, timer.resets)

	c.CancelRepeat()
	assert.Zero(t, c.repeatKey)
	assert.Equal(t, 1, timer.cancels)
}

func TestHandleRawDropsBadReports(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := DefaultConfig()
	cfg.Sanitize(logger)
	c := New(cfg, failNormalizer{}, logger)

	c.HandleRaw([]byte{0x01, 0x02})
	assert.Empty(t, drain(c))
	assert.Equal(t, PointerState{}, c.Pointer())
}

func TestHandleRawFullPipeline(t *testing.T) {
	c := testController(nil)

	rep := report.Report{Buttons: report.ButtonA, RT: 200}
	c.HandleRaw(rep.BuildReport())

	assert.Equal(t, []KeyTransition{{Code: 0x28, Down: true}}, drain(c))
	assert.True(t, c.Pointer().Left)
}
