package xbox360

import (
	"fmt"
	"strconv"
	"strings"
)

// CompatibleDevice identifies one controller known to speak the Xbox 360
// wire protocol.
type CompatibleDevice struct {
	VendorID    uint16
	ProductID   uint16
	Description string
}

// BuiltinDevices lists controllers verified against the Linux kernel xpad
// driver (XTYPE_XBOX360).
// Reference: linux/drivers/input/joystick/xpad.c
var BuiltinDevices = []CompatibleDevice{
	// Microsoft official controllers
	{0x045E, 0x028E, "Xbox 360 Wired Controller"},
	{0x045E, 0x028F, "Xbox 360 Wired Controller v2"},
	{0x045E, 0x0719, "Xbox 360 Wireless Receiver"},

	// Handheld gaming devices
	{0x0079, 0x18D4, "GPD Win 2 Controller"},
	{0x2563, 0x058D, "OneXPlayer Gamepad"},
	{0x17EF, 0x6182, "Lenovo Legion Go"},
	{0x1A86, 0xE310, "Legion Go S"},
	{0x0DB0, 0x1901, "MSI Claw"},
	{0x2993, 0x2001, "TECNO Pocket Go"},
	{0x1EE9, 0x1590, "ZOTAC Gaming Zone"},

	// 8BitDo
	{0x2DC8, 0x3106, "8BitDo Ultimate / Pro 2 Wired"},
	{0x2DC8, 0x3109, "8BitDo Ultimate Wireless"},
	{0x2DC8, 0x310A, "8BitDo Ultimate 2C Wireless"},
	{0x2DC8, 0x310B, "8BitDo Ultimate 2 Wireless"},
	{0x2DC8, 0x6001, "8BitDo SN30 Pro"},

	// Logitech
	{0x046D, 0xC21D, "Logitech F310"},
	{0x046D, 0xC21E, "Logitech F510"},
	{0x046D, 0xC21F, "Logitech F710"},
	{0x046D, 0xC242, "Logitech Chillstream"},

	// HyperX
	{0x03F0, 0x038D, "HyperX Clutch (wired)"},
	{0x03F0, 0x048D, "HyperX Clutch (wireless)"},

	// Other popular brands
	{0x1038, 0x1430, "SteelSeries Stratus Duo"},
	{0x1038, 0x1431, "SteelSeries Stratus Duo (alt)"},
	{0x2345, 0xE00B, "Machenike G5 Pro"},
	{0x3537, 0x1004, "GameSir T4 Kaleid"},
	{0x37D7, 0x2501, "Flydigi Apex 5"},
	{0x413D, 0x2104, "Black Shark Green Ghost"},
	{0x1949, 0x041A, "Amazon Game Controller"},

	// Razer
	{0x1689, 0xFD00, "Razer Onza Tournament"},
	{0x1689, 0xFD01, "Razer Onza Classic"},
	{0x1689, 0xFE00, "Razer Sabertooth"},
}

// DeviceList merges the built-in table with custom entries from
// configuration. Built-ins come first so custom entries can only extend,
// not shadow, the verified set.
func DeviceList(custom []CompatibleDevice) []CompatibleDevice {
	out := make([]CompatibleDevice, 0, len(BuiltinDevices)+len(custom))
	out = append(out, BuiltinDevices...)
	out = append(out, custom...)
	return out
}

// ParseDeviceSpec parses a "VID:PID:Description" string, with VID and PID
// as four-digit hex.
func ParseDeviceSpec(spec string) (CompatibleDevice, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return CompatibleDevice{}, fmt.Errorf("expected VID:PID:Description, got %q", spec)
	}
	vid, err := strconv.ParseUint(strings.TrimPrefix(parts[0], "0x"), 16, 16)
	if err != nil {
		return CompatibleDevice{}, fmt.Errorf("invalid vendor id %q: %w", parts[0], err)
	}
	pid, err := strconv.ParseUint(strings.TrimPrefix(parts[1], "0x"), 16, 16)
	if err != nil {
		return CompatibleDevice{}, fmt.Errorf("invalid product id %q: %w", parts[1], err)
	}
	desc := strings.TrimSpace(parts[2])
	if desc == "" {
		return CompatibleDevice{}, fmt.Errorf("empty description in %q", spec)
	}
	return CompatibleDevice{VendorID: uint16(vid), ProductID: uint16(pid), Description: desc}, nil
}

// Identify returns the matching device entry for a VID/PID pair.
func Identify(list []CompatibleDevice, vendor, product uint16) (CompatibleDevice, bool) {
	for _, d := range list {
		if d.VendorID == vendor && d.ProductID == product {
			return d, true
		}
	}
	return CompatibleDevice{}, false
}
