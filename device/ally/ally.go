// Package ally normalizes ASUS ROG Ally X DirectInput reports into the
// canonical controller report. The Ally X never exposes XInput mode, so its
// HID gamepad reports are remapped field by field.
//
// HID protocol reference:
//   - https://github.com/flukejones/linux (wip/ally-6.14-refactor branch)
//     drivers/hid/asus-ally-hid/
package ally

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/report"
)

// Name is the registry key for Ally X controllers.
const Name = "ally-x"

var (
	// ErrReportTooShort is returned for reports below the 16-byte payload.
	ErrReportTooShort = errors.New("ally: report too short")
	// ErrUnexpectedReportID is returned when a 17-byte report does not carry
	// the gamepad report id. Non-fatal; the caller drops the report.
	ErrUnexpectedReportID = errors.New("ally: unexpected report id")
)

func init() {
	device.RegisterNormalizer(Name, normalizer{})
}

type normalizer struct{}

// hatToDPad maps hat-switch values 0-8 onto canonical D-pad bits.
var hatToDPad = [9]uint16{
	dpadNeutral:   0,
	dpadUp:        report.ButtonDPadUp,
	dpadUpRight:   report.ButtonDPadUp | report.ButtonDPadRight,
	dpadRight:     report.ButtonDPadRight,
	dpadDownRight: report.ButtonDPadDown | report.ButtonDPadRight,
	dpadDown:      report.ButtonDPadDown,
	dpadDownLeft:  report.ButtonDPadDown | report.ButtonDPadLeft,
	dpadLeft:      report.ButtonDPadLeft,
	dpadUpLeft:    report.ButtonDPadUp | report.ButtonDPadLeft,
}

// Normalize converts an Ally X DirectInput report into canonical form.
//
// The transport may or may not strip the leading report-id byte, so both
// 16-byte (stripped) and 17-byte (id-prefixed) reports are accepted. Payload
// layout after the id: four u16 stick axes (0-65535), two u16 triggers
// (0-1023), four button bytes of which byte 2 is the hat switch.
func (normalizer) Normalize(raw []byte) (report.Report, error) {
	if len(raw) < reportLen {
		return report.Report{}, fmt.Errorf("%w: %d bytes", ErrReportTooShort, len(raw))
	}
	if len(raw) >= reportLen+1 {
		if raw[0] != ReportID {
			return report.Report{}, fmt.Errorf("%w: 0x%02X", ErrUnexpectedReportID, raw[0])
		}
		raw = raw[1:]
	}

	var out report.Report

	// Sticks: unsigned 0-65535 centered at 32768 -> signed canonical range.
	out.LX = int16(int32(binary.LittleEndian.Uint16(raw[0:2])) - 32768)
	out.LY = int16(int32(binary.LittleEndian.Uint16(raw[2:4])) - 32768)
	out.RX = int16(int32(binary.LittleEndian.Uint16(raw[4:6])) - 32768)
	out.RY = int16(int32(binary.LittleEndian.Uint16(raw[6:8])) - 32768)

	// Triggers: 10-bit 0-1023 -> 8-bit 0-255. The bottom two bits are lost;
	// that precision is below the trigger threshold granularity anyway.
	out.LT = uint8(binary.LittleEndian.Uint16(raw[8:10]) >> 2)
	out.RT = uint8(binary.LittleEndian.Uint16(raw[10:12]) >> 2)

	var buttons uint16
	if hat := raw[14]; hat <= dpadUpLeft {
		buttons |= hatToDPad[hat]
	}

	b0, b1 := raw[12], raw[13]
	if b0&btnA != 0 {
		buttons |= report.ButtonA
	}
	if b0&btnB != 0 {
		buttons |= report.ButtonB
	}
	if b0&btnX != 0 {
		buttons |= report.ButtonX
	}
	if b0&btnY != 0 {
		buttons |= report.ButtonY
	}
	if b0&btnLB != 0 {
		buttons |= report.ButtonLShoulder
	}
	if b0&btnRB != 0 {
		buttons |= report.ButtonRShoulder
	}
	if b0&btnView != 0 {
		buttons |= report.ButtonBack
	}
	if b0&btnMenu != 0 {
		buttons |= report.ButtonStart
	}
	if b1&btnL3 != 0 {
		buttons |= report.ButtonLThumb
	}
	if b1&btnR3 != 0 {
		buttons |= report.ButtonRThumb
	}
	if b1&btnMode != 0 {
		buttons |= report.ButtonGuide
	}
	out.Buttons = buttons

	return out, nil
}
