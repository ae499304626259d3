package ally

// ASUS ROG Ally X identity. The original Ally (0x1ABE) exposes XInput mode
// and goes through the xbox360 path instead.
const (
	VendorID   = 0x0B05
	AllyXPID   = 0x1B4C
	EndpointIn = 0x87 // gamepad interface interrupt IN
)

// DirectInput report framing
const (
	ReportID  = 0x0B
	reportLen = 16 // after the report-id byte
)

// Button byte 0 bits
const (
	btnA    = 1 << 0
	btnB    = 1 << 1
	btnX    = 1 << 2
	btnY    = 1 << 3
	btnLB   = 1 << 4
	btnRB   = 1 << 5
	btnView = 1 << 6
	btnMenu = 1 << 7
)

// Button byte 1 bits
const (
	btnL3   = 1 << 0
	btnR3   = 1 << 1
	btnMode = 1 << 2
)

// Hat-switch values carried in button byte 2
const (
	dpadNeutral   = 0
	dpadUp        = 1
	dpadUpRight   = 2
	dpadRight     = 3
	dpadDownRight = 4
	dpadDown      = 5
	dpadDownLeft  = 6
	dpadLeft      = 7
	dpadUpLeft    = 8
)
