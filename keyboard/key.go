// Package keyboard resolves queued key transitions into keystrokes. It
// tracks modifier and toggle state, composes dead keys, and applies the
// active layout table.
package keyboard

// PhysicalKey identifies a key position on the reference keyboard,
// independent of the active layout. The order is load-bearing: it indexes
// usageForKey.
type PhysicalKey uint8

const (
	KeyLCtrl PhysicalKey = iota
	KeyA0
	KeyLAlt
	KeySpaceBar
	KeyA2
	KeyA3
	KeyA4
	KeyRCtrl
	KeyLeftArrow
	KeyDownArrow
	KeyRightArrow
	KeyZero
	KeyPeriod
	KeyEnter
	KeyLShift
	KeyB0
	KeyB1
	KeyB2
	KeyB3
	KeyB4
	KeyB5
	KeyB6
	KeyB7
	KeyB8
	KeyB9
	KeyB10
	KeyRShift
	KeyUpArrow
	KeyOne
	KeyTwo
	KeyThree
	KeyCapsLock
	KeyC1
	KeyC2
	KeyC3
	KeyC4
	KeyC5
	KeyC6
	KeyC7
	KeyC8
	KeyC9
	KeyC10
	KeyC11
	KeyC12
	KeyFour
	KeyFive
	KeySix
	KeyPlus
	KeyTab
	KeyD1
	KeyD2
	KeyD3
	KeyD4
	KeyD5
	KeyD6
	KeyD7
	KeyD8
	KeyD9
	KeyD10
	KeyD11
	KeyD12
	KeyD13
	KeyDel
	KeyEnd
	KeyPgDn
	KeySeven
	KeyEight
	KeyNine
	KeyE0
	KeyE1
	KeyE2
	KeyE3
	KeyE4
	KeyE5
	KeyE6
	KeyE7
	KeyE8
	KeyE9
	KeyE10
	KeyE11
	KeyE12
	KeyBackSpace
	KeyIns
	KeyHome
	KeyPgUp
	KeyNLck
	KeySlash
	KeyAsterisk
	KeyMinus
	KeyEsc
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrint
	KeySLck
	KeyPause

	physicalKeyCount
)

// usageForKey maps a physical key to its USB HID usage code.
var usageForKey = [physicalKeyCount]uint8{
	KeyLCtrl:      0xE0,
	KeyA0:         0xE3,
	KeyLAlt:       0xE2,
	KeySpaceBar:   0x2C,
	KeyA2:         0xE6,
	KeyA3:         0xE7,
	KeyA4:         0x65,
	KeyRCtrl:      0xE4,
	KeyLeftArrow:  0x50,
	KeyDownArrow:  0x51,
	KeyRightArrow: 0x4F,
	KeyZero:       0x62,
	KeyPeriod:     0x63,
	KeyEnter:      0x28,
	KeyLShift:     0xE1,
	KeyB0:         0x64,
	KeyB1:         0x1D,
	KeyB2:         0x1B,
	KeyB3:         0x06,
	KeyB4:         0x19,
	KeyB5:         0x05,
	KeyB6:         0x11,
	KeyB7:         0x10,
	KeyB8:         0x36,
	KeyB9:         0x37,
	KeyB10:        0x38,
	KeyRShift:     0xE5,
	KeyUpArrow:    0x52,
	KeyOne:        0x59,
	KeyTwo:        0x5A,
	KeyThree:      0x5B,
	KeyCapsLock:   0x39,
	KeyC1:         0x04,
	KeyC2:         0x16,
	KeyC3:         0x07,
	KeyC4:         0x09,
	KeyC5:         0x0A,
	KeyC6:         0x0B,
	KeyC7:         0x0D,
	KeyC8:         0x0E,
	KeyC9:         0x0F,
	KeyC10:        0x33,
	KeyC11:        0x34,
	KeyC12:        0x32,
	KeyFour:       0x5C,
	KeyFive:       0x5D,
	KeySix:        0x5E,
	KeyPlus:       0x57,
	KeyTab:        0x2B,
	KeyD1:         0x14,
	KeyD2:         0x1A,
	KeyD3:         0x08,
	KeyD4:         0x15,
	KeyD5:         0x17,
	KeyD6:         0x1C,
	KeyD7:         0x18,
	KeyD8:         0x0C,
	KeyD9:         0x12,
	KeyD10:        0x13,
	KeyD11:        0x2F,
	KeyD12:        0x30,
	KeyD13:        0x31,
	KeyDel:        0x4C,
	KeyEnd:        0x4D,
	KeyPgDn:       0x4E,
	KeySeven:      0x5F,
	KeyEight:      0x60,
	KeyNine:       0x61,
	KeyE0:         0x35,
	KeyE1:         0x1E,
	KeyE2:         0x1F,
	KeyE3:         0x20,
	KeyE4:         0x21,
	KeyE5:         0x22,
	KeyE6:         0x23,
	KeyE7:         0x24,
	KeyE8:         0x25,
	KeyE9:         0x26,
	KeyE10:        0x27,
	KeyE11:        0x2D,
	KeyE12:        0x2E,
	KeyBackSpace:  0x2A,
	KeyIns:        0x49,
	KeyHome:       0x4A,
	KeyPgUp:       0x4B,
	KeyNLck:       0x53,
	KeySlash:      0x54,
	KeyAsterisk:   0x55,
	KeyMinus:      0x56,
	KeyEsc:        0x29,
	KeyF1:         0x3A,
	KeyF2:         0x3B,
	KeyF3:         0x3C,
	KeyF4:         0x3D,
	KeyF5:         0x3E,
	KeyF6:         0x3F,
	KeyF7:         0x40,
	KeyF8:         0x41,
	KeyF9:         0x42,
	KeyF10:        0x43,
	KeyF11:        0x44,
	KeyF12:        0x45,
	KeyPrint:      0x46,
	KeySLck:       0x47,
	KeyPause:      0x48,
}

// Modifier classes a descriptor can carry. Latching modifiers track
// press/release; lock modifiers toggle on press; navigation modifiers carry
// a scan code of their own.
type Modifier uint16

const (
	ModNone Modifier = iota
	ModLeftControl
	ModRightControl
	ModLeftAlt
	ModRightAlt
	ModAltGr
	ModInsert
	ModDelete
	ModPageDown
	ModPageUp
	ModHome
	ModEnd
	ModLeftShift
	ModRightShift
	ModCapsLock
	ModNumLock
	ModLeftArrow
	ModRightArrow
	ModDownArrow
	ModUpArrow
	ModDeadKey
	ModDeadKeyDependency
	ModF1
	ModF2
	ModF3
	ModF4
	ModF5
	ModF6
	ModF7
	ModF8
	ModF9
	ModF10
	ModF11
	ModF12
	ModPrint
	ModSysRequest
	ModScrollLock
	ModPause
	ModBreak
	ModLeftLogo
	ModRightLogo
	ModMenu

	modifierCount
)

// Affected-by flags on a descriptor.
const (
	AffectedByShift    = 0x0001
	AffectedByCapsLock = 0x0002
	AffectedByNumLock  = 0x0004
)

// Output scan codes, distinct from USB usage codes.
const (
	ScanNull     uint16 = 0x00
	ScanUp       uint16 = 0x01
	ScanDown     uint16 = 0x02
	ScanRight    uint16 = 0x03
	ScanLeft     uint16 = 0x04
	ScanHome     uint16 = 0x05
	ScanEnd      uint16 = 0x06
	ScanInsert   uint16 = 0x07
	ScanDelete   uint16 = 0x08
	ScanPageUp   uint16 = 0x09
	ScanPageDown uint16 = 0x0A
	ScanF1       uint16 = 0x0B
	ScanF2       uint16 = 0x0C
	ScanF3       uint16 = 0x0D
	ScanF4       uint16 = 0x0E
	ScanF5       uint16 = 0x0F
	ScanF6       uint16 = 0x10
	ScanF7       uint16 = 0x11
	ScanF8       uint16 = 0x12
	ScanF9       uint16 = 0x13
	ScanF10      uint16 = 0x14
	ScanF11      uint16 = 0x15
	ScanF12      uint16 = 0x16
	ScanEsc      uint16 = 0x17
	ScanPause    uint16 = 0x48
)

// scanForModifier maps a modifier class to the scan code it emits.
// Classes without an entry emit ScanNull.
var scanForModifier = [modifierCount]uint16{
	ModInsert:     ScanInsert,
	ModDelete:     ScanDelete,
	ModPageDown:   ScanPageDown,
	ModPageUp:     ScanPageUp,
	ModHome:       ScanHome,
	ModEnd:        ScanEnd,
	ModLeftArrow:  ScanLeft,
	ModRightArrow: ScanRight,
	ModDownArrow:  ScanDown,
	ModUpArrow:    ScanUp,
	ModF1:         ScanF1,
	ModF2:         ScanF2,
	ModF3:         ScanF3,
	ModF4:         ScanF4,
	ModF5:         ScanF5,
	ModF6:         ScanF6,
	ModF7:         ScanF7,
	ModF8:         ScanF8,
	ModF9:         ScanF9,
	ModF10:        ScanF10,
	ModF11:        ScanF11,
	ModF12:        ScanF12,
	ModPause:      ScanPause,
}

// Descriptor is one resolved layout entry for a physical key.
type Descriptor struct {
	Key                 PhysicalKey
	Unicode             rune
	ShiftedUnicode      rune
	AltGrUnicode        rune
	ShiftedAltGrUnicode rune
	Modifier            Modifier
	Affected            uint16
}
