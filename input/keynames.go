package input

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// keyNames maps human-readable names used in mapping files to USB HID usage
// codes (HID Usage Tables 1.12 ch. 10) and the mouse function codes. Lookup
// is case-insensitive.
var keyNames = map[string]uint8{
	"keya": 0x04, "keyb": 0x05, "keyc": 0x06, "keyd": 0x07,
	"keye": 0x08, "keyf": 0x09, "keyg": 0x0A, "keyh": 0x0B,
	"keyi": 0x0C, "keyj": 0x0D, "keyk": 0x0E, "keyl": 0x0F,
	"keym": 0x10, "keyn": 0x11, "keyo": 0x12, "keyp": 0x13,
	"keyq": 0x14, "keyr": 0x15, "keys": 0x16, "keyt": 0x17,
	"keyu": 0x18, "keyv": 0x19, "keyw": 0x1A, "keyx": 0x1B,
	"keyy": 0x1C, "keyz": 0x1D,

	"key1": 0x1E, "key2": 0x1F, "key3": 0x20, "key4": 0x21,
	"key5": 0x22, "key6": 0x23, "key7": 0x24, "key8": 0x25,
	"key9": 0x26, "key0": 0x27,

	"keyenter": 0x28, "keyreturn": 0x28,
	"keyescape": 0x29, "keyesc": 0x29,
	"keybackspace": 0x2A,
	"keytab":       0x2B,
	"keyspace":     0x2C,
	"keyminus":     0x2D,
	"keyequal":     0x2E,
	"keyleftbracket": 0x2F, "keyrightbracket": 0x30,
	"keybackslash": 0x31,
	"keysemicolon": 0x33,
	"keyapostrophe": 0x34, "keyquote": 0x34,
	"keygrave": 0x35, "keytilde": 0x35,
	"keycomma": 0x36,
	"keyperiod": 0x37, "keydot": 0x37,
	"keyslash":    0x38,
	"keycapslock": 0x39,

	"keyf1": 0x3A, "keyf2": 0x3B, "keyf3": 0x3C, "keyf4": 0x3D,
	"keyf5": 0x3E, "keyf6": 0x3F, "keyf7": 0x40, "keyf8": 0x41,
	"keyf9": 0x42, "keyf10": 0x43, "keyf11": 0x44, "keyf12": 0x45,

	"keyprintscreen": 0x46, "keyprtsc": 0x46,
	"keyscrolllock": 0x47,
	"keypause":      0x48,
	"keyinsert":     0x49, "keyins": 0x49,
	"keyhome":   0x4A,
	"keypageup": 0x4B, "keypgup": 0x4B,
	"keydelete": 0x4C, "keydel": 0x4C,
	"keyend":      0x4D,
	"keypagedown": 0x4E, "keypgdown": 0x4E, "keypgdn": 0x4E,

	"keyright": 0x4F, "keyleft": 0x50, "keydown": 0x51, "keyup": 0x52,
	"keyarrowright": 0x4F, "keyarrowleft": 0x50,
	"keyarrowdown": 0x51, "keyarrowup": 0x52,

	"keynumlock":    0x53,
	"keykpdivide":   0x54, "keykpslash": 0x54,
	"keykpmultiply": 0x55, "keykpstar": 0x55,
	"keykpminus": 0x56,
	"keykpplus":  0x57,
	"keykpenter": 0x58,
	"keykp1":     0x59, "keykp2": 0x5A, "keykp3": 0x5B,
	"keykp4": 0x5C, "keykp5": 0x5D, "keykp6": 0x5E,
	"keykp7": 0x5F, "keykp8": 0x60, "keykp9": 0x61,
	"keykp0": 0x62,
	"keykpdot": 0x63, "keykpperiod": 0x63,

	"keyapplication": 0x65, "keymenu": 0x65,

	"keyleftctrl": 0xE0, "keyleftcontrol": 0xE0, "keylctrl": 0xE0,
	"keyleftshift": 0xE1, "keylshift": 0xE1,
	"keyleftalt": 0xE2, "keylalt": 0xE2,
	"keyleftmeta": 0xE3, "keyleftwin": 0xE3, "keyleftsuper": 0xE3, "keylwin": 0xE3,
	"keyrightctrl": 0xE4, "keyrightcontrol": 0xE4, "keyrctrl": 0xE4,
	"keyrightshift": 0xE5, "keyrshift": 0xE5,
	"keyrightalt": 0xE6, "keyralt": 0xE6,
	"keyrightmeta": 0xE7, "keyrightwin": 0xE7, "keyrightsuper": 0xE7, "keyrwin": 0xE7,

	"mouseleft": FuncMouseLeft, "mouseleftbutton": FuncMouseLeft,
	"mouseright": FuncMouseRight, "mouserightbutton": FuncMouseRight,
	"mousemiddle": FuncMouseMiddle, "mousemiddlebutton": FuncMouseMiddle,
	"scrollup":   FuncScrollUp,
	"scrolldown": FuncScrollDown,

	"disabled": MappingDisabled, "none": MappingDisabled, "off": MappingDisabled,
}

// ParseKeyName resolves a mapping value from a configuration file: a
// semantic name like "KeyEnter", or a hex scan code like "0x28" or "28".
// Unparseable values map to disabled.
func ParseKeyName(value string) (uint8, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return MappingDisabled, fmt.Errorf("empty key value")
	}

	if code, ok := keyNames[strings.ToLower(value)]; ok {
		return code, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if len(hex) >= 1 && len(hex) <= 2 {
		if n, err := strconv.ParseUint(hex, 16, 8); err == nil {
			return uint8(n), nil
		}
	}
	return MappingDisabled, fmt.Errorf("unknown key %q", value)
}

// KeyName returns the canonical name for a mapping byte, falling back to
// hex for codes without a name. Used when generating config templates.
func KeyName(code uint8) string {
	switch code {
	case FuncMouseLeft:
		return "MouseLeft"
	case FuncMouseRight:
		return "MouseRight"
	case FuncMouseMiddle:
		return "MouseMiddle"
	case FuncScrollUp:
		return "ScrollUp"
	case FuncScrollDown:
		return "ScrollDown"
	case MappingDisabled:
		return "Disabled"
	}
	for name, c := range canonicalKeyNames {
		if c == code {
			return name
		}
	}
	return fmt.Sprintf("0x%02X", code)
}

// KnownKeyCodes returns every named mapping byte in ascending order.
func KnownKeyCodes() []uint8 {
	seen := map[uint8]bool{}
	for _, code := range keyNames {
		seen[code] = true
	}
	out := make([]uint8, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// canonicalKeyNames holds one preferred name per code for template output.
var canonicalKeyNames = map[string]uint8{
	"KeyEnter": 0x28, "KeyEscape": 0x29, "KeyBackspace": 0x2A,
	"KeyTab": 0x2B, "KeySpace": 0x2C,
	"KeyUp": 0x52, "KeyDown": 0x51, "KeyLeft": 0x50, "KeyRight": 0x4F,
	"KeyPageUp": 0x4B, "KeyPageDown": 0x4E,
	"KeyLeftCtrl": 0xE0, "KeyLeftShift": 0xE1, "KeyLeftAlt": 0xE2,
	"KeyW": 0x1A, "KeyA": 0x04, "KeyS": 0x16, "KeyD": 0x07,
}
