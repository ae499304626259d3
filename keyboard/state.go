package keyboard

import (
	"log/slog"
	"sync/atomic"

	"github.com/prepad/prepad/input"
)

// Source is the queue the state machine drains, one transition per pop.
type Source interface {
	PopKey() (input.KeyTransition, bool)
}

// Modifiers is the latching and toggle state snapshot. The combined
// Ctrl/Shift/Alt booleans track the sided ones but are cleared
// independently, matching the reference behavior where shift consumption
// after a printable key clears only the sided flags.
type Modifiers struct {
	LeftCtrl, RightCtrl, Ctrl     bool
	LeftShift, RightShift, Shift  bool
	LeftAlt, RightAlt, Alt        bool
	LeftLogo, RightLogo           bool
	Menu, SysReq, AltGr           bool
	NumLock, CapsLock, ScrollLock bool
}

// KeyData is one resolved keystroke.
type KeyData struct {
	ScanCode  uint16
	Unicode   rune
	Modifiers Modifiers
}

// State resolves usage codes against the active layout while tracking
// modifier, toggle, and dead-key state. The layout pointer is swapped
// atomically so a watcher may replace it from another goroutine; everything
// else is confined to the device's execution context.
type State struct {
	layout      atomic.Pointer[Layout]
	mods        Modifiers
	currentDead *DeadKey

	// PartialKeys lets keystrokes with neither scan code nor unicode
	// through (modifier-only reporting).
	PartialKeys bool

	resetSystem func()
	logger      *slog.Logger
}

// NewState builds a state machine starting from the built-in layout.
// resetSystem is invoked on the Ctrl+Alt+Del chord; nil disables the chord.
func NewState(logger *slog.Logger, resetSystem func()) *State {
	s := &State{resetSystem: resetSystem, logger: logger}
	s.layout.Store(DefaultLayout())
	return s
}

// SetLayout atomically replaces the active layout.
func (s *State) SetLayout(l *Layout) {
	s.layout.Store(l)
}

// Layout returns the active layout.
func (s *State) Layout() *Layout {
	return s.layout.Load()
}

// Modifiers returns the current modifier snapshot.
func (s *State) Modifiers() Modifiers {
	return s.mods
}

// Next drains the source until a pressed key resolves, updating modifier
// state along the way. ok is false when the source is exhausted or the
// keystroke produced no output this poll (dead key recorded, toggle,
// unresolvable descriptor).
func (s *State) Next(src Source) (KeyData, bool) {
	code, ok := s.parseKey(src)
	if !ok {
		return KeyData{}, false
	}
	return s.resolve(code)
}

// parseKey pops transitions until one represents a pressed key with a
// descriptor in the active layout. Modifier presses and releases mutate
// state and are themselves returned as keycodes when pressed, like any
// other key.
func (s *State) parseKey(src Source) (uint8, bool) {
	layout := s.layout.Load()
	for {
		t, ok := src.PopKey()
		if !ok {
			return 0, false
		}
		d, ok := layout.Descriptor(t.Code)
		if !ok {
			continue
		}

		if !t.Down {
			s.release(d.Modifier)
			continue
		}
		s.press(d.Modifier)

		if d.Modifier == ModDelete && s.mods.Ctrl && s.mods.Alt {
			s.logger.Info("ctrl+alt+del, requesting warm reset")
			if s.resetSystem != nil {
				s.resetSystem()
			}
		}
		return t.Code, true
	}
}

func (s *State) release(m Modifier) {
	switch m {
	case ModLeftControl:
		s.mods.LeftCtrl = false
		s.mods.Ctrl = false
	case ModRightControl:
		s.mods.RightCtrl = false
		s.mods.Ctrl = false
	case ModLeftShift:
		s.mods.LeftShift = false
		s.mods.Shift = false
	case ModRightShift:
		s.mods.RightShift = false
		s.mods.Shift = false
	case ModLeftAlt:
		s.mods.LeftAlt = false
		s.mods.Alt = false
	case ModRightAlt:
		s.mods.RightAlt = false
		s.mods.Alt = false
	case ModLeftLogo:
		s.mods.LeftLogo = false
	case ModRightLogo:
		s.mods.RightLogo = false
	case ModMenu:
		s.mods.Menu = false
	case ModPrint, ModSysRequest:
		s.mods.SysReq = false
	case ModAltGr:
		s.mods.AltGr = false
	}
}

func (s *State) press(m Modifier) {
	switch m {
	case ModLeftControl:
		s.mods.LeftCtrl = true
		s.mods.Ctrl = true
	case ModRightControl:
		s.mods.RightCtrl = true
		s.mods.Ctrl = true
	case ModLeftShift:
		s.mods.LeftShift = true
		s.mods.Shift = true
	case ModRightShift:
		s.mods.RightShift = true
		s.mods.Shift = true
	case ModLeftAlt:
		s.mods.LeftAlt = true
		s.mods.Alt = true
	case ModRightAlt:
		s.mods.RightAlt = true
		s.mods.Alt = true
	case ModLeftLogo:
		s.mods.LeftLogo = true
	case ModRightLogo:
		s.mods.RightLogo = true
	case ModMenu:
		s.mods.Menu = true
	case ModPrint, ModSysRequest:
		s.mods.SysReq = true
	case ModAltGr:
		s.mods.AltGr = true
	case ModNumLock:
		s.mods.NumLock = !s.mods.NumLock
	case ModCapsLock:
		s.mods.CapsLock = !s.mods.CapsLock
	case ModScrollLock:
		s.mods.ScrollLock = !s.mods.ScrollLock
	}
}

// resolve translates a usage code into a keystroke against the active
// layout, applying dead-key composition and the shift, caps and numlock
// transformations in that order.
func (s *State) resolve(code uint8) (KeyData, bool) {
	layout := s.layout.Load()
	d, ok := layout.Descriptor(code)
	if !ok {
		return KeyData{}, false
	}

	if d.Modifier == ModDeadKey {
		// Record the non-spacing key; the next keystroke resolves
		// against its variants.
		s.currentDead = layout.DeadKeyFor(d)
		return KeyData{}, false
	}
	if s.currentDead != nil {
		d = s.currentDead.composedVariant(d)
		s.currentDead = nil
	}

	var kd KeyData
	kd.ScanCode = scanForModifier[d.Modifier]
	kd.Unicode = d.Unicode

	if d.Affected&AffectedByShift != 0 {
		if s.mods.Shift {
			kd.Unicode = d.ShiftedUnicode

			// Shift is consumed by printable keys it actually
			// shifts, so the reported state does not carry it.
			if d.Unicode != 0 && d.ShiftedUnicode != 0 && d.Unicode != d.ShiftedUnicode {
				s.mods.LeftShift = false
				s.mods.RightShift = false
			}
			if s.mods.AltGr {
				kd.Unicode = d.ShiftedAltGrUnicode
			}
		} else {
			kd.Unicode = d.Unicode
			if s.mods.AltGr {
				kd.Unicode = d.AltGrUnicode
			}
		}
	}

	if d.Affected&AffectedByCapsLock != 0 && s.mods.CapsLock {
		switch kd.Unicode {
		case d.Unicode:
			kd.Unicode = d.ShiftedUnicode
		case d.ShiftedUnicode:
			kd.Unicode = d.Unicode
		}
	}

	if d.Affected&AffectedByNumLock != 0 {
		// NumLock on without shift means the numeric interpretation:
		// drop the control scan code. Otherwise keep the scan code and
		// drop the unicode.
		if s.mods.NumLock && !s.mods.Shift {
			kd.ScanCode = ScanNull
		} else {
			kd.Unicode = 0
		}
	}

	if kd.Unicode == 0x1B && kd.ScanCode == ScanNull {
		kd.ScanCode = ScanEsc
		kd.Unicode = 0
	}

	if kd.Unicode == 0 && kd.ScanCode == ScanNull && !s.PartialKeys {
		return KeyData{}, false
	}

	kd.Modifiers = s.mods
	return kd, true
}
