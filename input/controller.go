// Package input implements the controller translation pipeline: edge-diffing
// of buttons and triggers, analog stick processing, and the bounded key
// transition queue feeding the keyboard state machine.
package input

import (
	"log/slog"
	"time"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/report"
)

// Repeat timing. The delay applies before the first re-injection, the rate
// between subsequent ones.
const (
	RepeatDelay = 450 * time.Millisecond
	RepeatRate  = 80 * time.Millisecond
)

// KeyTransition is one queued key edge.
type KeyTransition struct {
	Code uint8
	Down bool
}

// PointerState is the relative pointer snapshot for the current cycle.
// Movement deltas are overwritten on every processed report while a stick
// drives them; button booleans change only on edges.
type PointerState struct {
	DX, DY, DZ int32
	Left       bool
	Right      bool
	Middle     bool
}

// ControllerState is the persistent per-device decode state. It is owned by
// the Controller and mutated only inside the report handler.
type ControllerState struct {
	Buttons            uint16
	LeftTriggerActive  bool
	RightTriggerActive bool
	LX, LY, RX, RY     int16
	LeftDir, RightDir  uint8
}

// RepeatTimer is the scheduling surface the controller needs for repeat-key
// re-injection. Cancel on an unset timer is a no-op; Reset replaces any
// pending expiration.
type RepeatTimer interface {
	Cancel()
	Reset(d time.Duration)
}

// Controller runs the translation pipeline for one physical device. All
// methods must be called from the device's single execution context; nothing
// here locks.
type Controller struct {
	cfg    *Config
	norm   device.Normalizer
	logger *slog.Logger

	state   ControllerState
	queue   Queue[KeyTransition]
	pointer PointerState

	repeatKey   uint8
	repeatTimer RepeatTimer
}

// New builds a controller around an immutable configuration and a report
// normalizer. The configuration must already be sanitized.
func New(cfg *Config, norm device.Normalizer, logger *slog.Logger) *Controller {
	return &Controller{cfg: cfg, norm: norm, logger: logger}
}

// SetRepeatTimer attaches the repeat re-injection timer.
func (c *Controller) SetRepeatTimer(t RepeatTimer) {
	c.repeatTimer = t
}

// PopKey removes the oldest queued key transition; ok is false when the
// queue is empty. This is the drain point for the keystroke consumer.
func (c *Controller) PopKey() (KeyTransition, bool) {
	return c.queue.Pop()
}

// PendingKeys returns the number of queued transitions not yet popped.
// Consumers use it to tell an empty queue apart from a pop that produced
// no keystroke.
func (c *Controller) PendingKeys() int {
	return c.queue.Len()
}

// Pointer returns the current pointer snapshot.
func (c *Controller) Pointer() PointerState {
	return c.pointer
}

// HandleRaw is the pipeline entry point invoked per transfer completion.
// Normalization failures drop the report and leave all state untouched.
func (c *Controller) HandleRaw(raw []byte) {
	rep, err := c.norm.Normalize(raw)
	if err != nil {
		c.logger.Warn("dropping report", "error", err, "len", len(raw))
		return
	}
	c.HandleReport(rep)
}

// HandleReport runs one canonical report through the decoders.
func (c *Controller) HandleReport(rep report.Report) {
	if c.state.Buttons != rep.Buttons {
		c.processButtonChanges(c.state.Buttons, rep.Buttons)
		c.state.Buttons = rep.Buttons
	}

	c.processTrigger(rep.LT, &c.state.LeftTriggerActive, c.cfg.LeftTriggerKey)
	c.processTrigger(rep.RT, &c.state.RightTriggerActive, c.cfg.RightTriggerKey)

	c.state.LX, c.state.LY = rep.LX, rep.LY
	c.state.RX, c.state.RY = rep.RX, rep.RY
	c.processSticks()

	// Controller buttons do not auto-repeat: every processed report clears
	// the repeat key and stops the timer.
	c.repeatKey = 0
	if c.repeatTimer != nil {
		c.repeatTimer.Cancel()
	}
}

// processButtonChanges edge-diffs the button masks and applies the mapping
// for every changed bit.
func (c *Controller) processButtonChanges(oldButtons, newButtons uint16) {
	for i := 0; i < report.ButtonCount; i++ {
		mask := uint16(1) << i
		wasPressed := oldButtons&mask != 0
		isPressed := newButtons&mask != 0
		if wasPressed == isPressed {
			continue
		}
		c.apply(c.cfg.ButtonMap[i], isPressed)
	}
}

// processTrigger applies the shared threshold (strict greater-than, no
// hysteresis) and classifies the mapping on a flip of the active flag.
func (c *Controller) processTrigger(value uint8, active *bool, mapping uint8) {
	pressed := value > c.cfg.TriggerThreshold
	if pressed == *active {
		return
	}
	c.apply(mapping, pressed)
	*active = pressed
}

// apply classifies one mapping byte into a key transition, a pointer button,
// or nothing. Mapping values are pre-validated by Sanitize; anything
// unrecognized is ignored rather than queued.
func (c *Controller) apply(mapping uint8, pressed bool) {
	switch mapping {
	case FuncMouseLeft:
		c.pointer.Left = pressed
	case FuncMouseRight:
		c.pointer.Right = pressed
	case FuncMouseMiddle:
		c.pointer.Middle = pressed
	case MappingDisabled:
	default:
		if mapping <= 0xE7 {
			c.queueTransition(mapping, pressed)
		}
	}
}

func (c *Controller) queueTransition(code uint8, pressed bool) {
	c.queue.Push(KeyTransition{Code: code, Down: pressed})
	if !pressed && c.repeatKey == code {
		c.repeatKey = 0
	}
}

// processSticks runs the per-mode stick decoders and rewrites the pointer
// deltas for this cycle.
func (c *Controller) processSticks() {
	if c.cfg.LeftStick.Mode == StickKeys {
		newDir := stickDirection(c.state.LX, c.state.LY, &c.cfg.LeftStick)
		if newDir != c.state.LeftDir {
			c.processDirectionChange(c.state.LeftDir, newDir, &c.cfg.LeftStick)
			c.state.LeftDir = newDir
		}
	}
	if c.cfg.RightStick.Mode == StickKeys {
		newDir := stickDirection(c.state.RX, c.state.RY, &c.cfg.RightStick)
		if newDir != c.state.RightDir {
			c.processDirectionChange(c.state.RightDir, newDir, &c.cfg.RightStick)
			c.state.RightDir = newDir
		}
	}

	// Mouse mode, left stick priority when both are configured.
	if c.cfg.LeftStick.Mode == StickMouse || c.cfg.RightStick.Mode == StickMouse {
		var dx, dy int32
		if c.cfg.LeftStick.Mode == StickMouse {
			dx, dy = mouseDelta(c.state.LX, c.state.LY, &c.cfg.LeftStick)
		} else {
			dx, dy = mouseDelta(c.state.RX, c.state.RY, &c.cfg.RightStick)
		}
		c.pointer.DX = dx
		c.pointer.DY = dy
	}

	if c.cfg.LeftStick.Mode == StickScroll || c.cfg.RightStick.Mode == StickScroll {
		var dz int32
		if c.cfg.LeftStick.Mode == StickScroll {
			dz = scrollDelta(c.state.LY, &c.cfg.LeftStick)
		} else {
			dz = scrollDelta(c.state.RY, &c.cfg.RightStick)
		}
		c.pointer.DZ = dz
	}
}

// processDirectionChange maps changed direction bits to key transitions,
// exactly like button edges.
func (c *Controller) processDirectionChange(oldDir, newDir uint8, cfg *StickConfig) {
	changed := oldDir ^ newDir
	if changed == 0 {
		return
	}
	if changed&DirUp != 0 && cfg.UpMapping != MappingDisabled {
		c.apply(cfg.UpMapping, newDir&DirUp != 0)
	}
	if changed&DirDown != 0 && cfg.DownMapping != MappingDisabled {
		c.apply(cfg.DownMapping, newDir&DirDown != 0)
	}
	if changed&DirLeft != 0 && cfg.LeftMapping != MappingDisabled {
		c.apply(cfg.LeftMapping, newDir&DirLeft != 0)
	}
	if changed&DirRight != 0 && cfg.RightMapping != MappingDisabled {
		c.apply(cfg.RightMapping, newDir&DirRight != 0)
	}
}

// RepeatTick re-injects the repeat key and re-arms the timer. With controller
// sources the repeat key is cleared on every report, so this only fires for
// keys injected by other producers.
func (c *Controller) RepeatTick() {
	if c.repeatKey == 0 {
		return
	}
	c.queue.Push(KeyTransition{Code: c.repeatKey, Down: true})
	if c.repeatTimer != nil {
		c.repeatTimer.Reset(RepeatRate)
	}
}

// CancelRepeat clears the repeat key and stops the timer. Used by the
// transfer error path; safe when nothing is pending.
func (c *Controller) CancelRepeat() {
	c.repeatKey = 0
	if c.repeatTimer != nil {
		c.repeatTimer.Cancel()
	}
}
