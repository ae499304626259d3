package input

import "log/slog"

// Mapping byte values outside the plain scan-code range. Scan codes 0x00-0xE7
// map directly to USB HID keyboard usages; 0xF0-0xF4 are pointer functions;
// 0xFF disables the input. 0xE8-0xEF and 0xF5-0xFE are not decodable and must
// never reach the decoder; Sanitize enforces that.
const (
	FuncMouseLeft   = 0xF0
	FuncMouseRight  = 0xF1
	FuncMouseMiddle = 0xF2
	FuncScrollUp    = 0xF3 // accepted in configs, not decoded yet
	FuncScrollDown  = 0xF4
	MappingDisabled = 0xFF
)

// StickMode selects what an analog stick produces.
type StickMode uint8

const (
	StickDisabled StickMode = iota
	StickKeys
	StickMouse
	StickScroll
)

// Response curve ids
const (
	CurveLinear     = 1
	CurveSquare     = 2
	CurveSmoothstep = 3
)

// ButtonMapping assigns one mapping byte per logical button bit.
type ButtonMapping [16]uint8

// StickConfig holds per-stick processing parameters. Immutable after load.
type StickConfig struct {
	Mode       StickMode
	Deadzone   uint16 // 0-32767
	Saturation uint16 // 0-32767

	// Mouse mode
	MouseSensitivity uint8 // 1-100
	MouseMaxSpeed    uint8 // pixels per poll
	MouseCurve       uint8 // CurveLinear/CurveSquare/CurveSmoothstep

	// Keys mode
	DirectionMode uint8 // 4 or 8 way
	UpMapping     uint8
	DownMapping   uint8
	LeftMapping   uint8
	RightMapping  uint8

	// Scroll mode
	ScrollSensitivity uint8  // 1-100
	ScrollDeadzone    uint16 // 0 = use Deadzone
}

// Config is the immutable per-device translation configuration. It is built
// once at init, sanitized, and shared read-only by every pipeline entry
// point; nothing in this package mutates it.
type Config struct {
	TriggerThreshold uint8
	LeftTriggerKey   uint8
	RightTriggerKey  uint8
	ButtonMap        ButtonMapping
	LeftStick        StickConfig
	RightStick       StickConfig
}

// DefaultConfig returns the stock mapping: D-pad and face buttons drive
// navigation keys, triggers click the mouse, the left stick moves the
// pointer and the right stick scrolls.
func DefaultConfig() *Config {
	return &Config{
		TriggerThreshold: 128,
		LeftTriggerKey:   FuncMouseRight,
		RightTriggerKey:  FuncMouseLeft,
		ButtonMap: ButtonMapping{
			0x52, // DPAD_UP -> Up Arrow
			0x51, // DPAD_DOWN -> Down Arrow
			0x50, // DPAD_LEFT -> Left Arrow
			0x4F, // DPAD_RIGHT -> Right Arrow
			0x2C, // START -> Space
			0x2B, // BACK -> Tab
			0xE0, // LEFT_THUMB -> Left Control
			0xE2, // RIGHT_THUMB -> Left Alt
			0x4B, // LEFT_SHOULDER -> Page Up
			0x4E, // RIGHT_SHOULDER -> Page Down
			0xE1, // GUIDE -> Left Shift
			0xFF, // reserved
			0x28, // A -> Enter
			0x29, // B -> Escape
			0x2A, // X -> Backspace
			0x2B, // Y -> Tab
		},
		LeftStick: StickConfig{
			Mode:              StickMouse,
			Deadzone:          8000,
			Saturation:        32000,
			MouseSensitivity:  50,
			MouseMaxSpeed:     20,
			MouseCurve:        CurveSquare,
			DirectionMode:     4,
			UpMapping:         0x52, // Up Arrow
			DownMapping:       0x51, // Down Arrow
			LeftMapping:       0x50, // Left Arrow
			RightMapping:      0x4F, // Right Arrow
			ScrollSensitivity: 30,
		},
		RightStick: StickConfig{
			Mode:              StickScroll,
			Deadzone:          8689, // Xbox standard for the right stick
			Saturation:        32000,
			MouseSensitivity:  50,
			MouseMaxSpeed:     20,
			MouseCurve:        CurveSquare,
			DirectionMode:     4,
			UpMapping:         0x1A, // W
			DownMapping:       0x16, // S
			LeftMapping:       0x04, // A
			RightMapping:      0x07, // D
			ScrollSensitivity: 30,
		},
	}
}

// validMapping reports whether a mapping byte is decodable.
func validMapping(b uint8) bool {
	return b <= 0xE7 || (b >= 0xF0 && b <= 0xF4) || b == MappingDisabled
}

// Sanitize clamps out-of-range values to their nearest valid setting, logging
// a diagnostic for each correction. Loading never fails: a bad value degrades
// to a default, not to a dead controller.
func (c *Config) Sanitize(logger *slog.Logger) {
	if !validMapping(c.LeftTriggerKey) {
		logger.Warn("invalid left trigger mapping, using default", "value", c.LeftTriggerKey)
		c.LeftTriggerKey = FuncMouseRight
	}
	if !validMapping(c.RightTriggerKey) {
		logger.Warn("invalid right trigger mapping, using default", "value", c.RightTriggerKey)
		c.RightTriggerKey = FuncMouseLeft
	}
	for i, b := range c.ButtonMap {
		if !validMapping(b) {
			logger.Warn("invalid button mapping, disabling", "button", i, "value", b)
			c.ButtonMap[i] = MappingDisabled
		}
	}
	c.LeftStick.sanitize("left", logger)
	c.RightStick.sanitize("right", logger)
}

func (s *StickConfig) sanitize(name string, logger *slog.Logger) {
	if s.Mode > StickScroll {
		logger.Warn("invalid stick mode, defaulting to keys", "stick", name, "mode", uint8(s.Mode))
		s.Mode = StickKeys
	}
	if s.Deadzone > 32767 {
		logger.Warn("stick deadzone out of range, clamping", "stick", name, "deadzone", s.Deadzone)
		s.Deadzone = 32767
	}
	if s.Saturation > 32767 {
		logger.Warn("stick saturation out of range, clamping", "stick", name, "saturation", s.Saturation)
		s.Saturation = 32767
	}
	if s.MouseSensitivity < 1 || s.MouseSensitivity > 100 {
		s.MouseSensitivity = 50
	}
	if s.MouseCurve < CurveLinear || s.MouseCurve > CurveSmoothstep {
		s.MouseCurve = CurveSquare
	}
	if s.DirectionMode != 4 && s.DirectionMode != 8 {
		s.DirectionMode = 4
	}
	if s.ScrollSensitivity < 1 || s.ScrollSensitivity > 100 {
		s.ScrollSensitivity = 30
	}
	if !validMapping(s.UpMapping) {
		s.UpMapping = MappingDisabled
	}
	if !validMapping(s.DownMapping) {
		s.DownMapping = MappingDisabled
	}
	if !validMapping(s.LeftMapping) {
		s.LeftMapping = MappingDisabled
	}
	if !validMapping(s.RightMapping) {
		s.RightMapping = MappingDisabled
	}
}
