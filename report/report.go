// Package report defines the canonical 20-byte controller input report that
// all decoders operate on. The layout matches the wired Xbox 360 interrupt IN
// report; vendor-specific devices are normalized into this shape first.
package report

import (
	"encoding/binary"
	"io"
)

// Canonical report framing.
const (
	MsgType = 0x00 // byte 0: message type
	MsgSize = 0x14 // byte 1: payload size (20 bytes)
	Size    = 20
)

// Report is the canonical controller state for one input cycle.
//
// Layout (little-endian):
//
//	 0: 0x00              - Message type
//	 1: 0x14              - Payload size (20 bytes)
//	 2-3: Buttons (u16)
//	 4: LT (0-255)
//	 5: RT (0-255)
//	 6-7: LX (int16)
//	 8-9: LY (int16)
//	10-11: RX (int16)
//	12-13: RY (int16)
//	14-19: Reserved / zero
type Report struct {
	Buttons uint16
	// Triggers: 0-255
	LT, RT uint8
	// Sticks: signed 16-bit, stick up = positive Y
	LX, LY int16
	RX, RY int16
}

// BuildReport encodes the report into its 20-byte wire form.
func (r *Report) BuildReport() []byte {
	b := make([]byte, Size)
	b[0] = MsgType
	b[1] = MsgSize
	binary.LittleEndian.PutUint16(b[2:4], r.Buttons)
	b[4] = r.LT
	b[5] = r.RT
	binary.LittleEndian.PutUint16(b[6:8], uint16(r.LX))
	binary.LittleEndian.PutUint16(b[8:10], uint16(r.LY))
	binary.LittleEndian.PutUint16(b[10:12], uint16(r.RX))
	binary.LittleEndian.PutUint16(b[12:14], uint16(r.RY))
	return b
}

// MarshalBinary encodes the report to 20 bytes.
func (r *Report) MarshalBinary() ([]byte, error) {
	return r.BuildReport(), nil
}

// UnmarshalBinary decodes the field region of a canonical report. The message
// type and size bytes are not validated; real controllers interleave other
// message types on the same endpoint and the original driver ignores them too.
// Anything shorter than the stick region is rejected.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < 14 {
		return io.ErrUnexpectedEOF
	}
	r.Buttons = binary.LittleEndian.Uint16(data[2:4])
	r.LT = data[4]
	r.RT = data[5]
	r.LX = int16(binary.LittleEndian.Uint16(data[6:8]))
	r.LY = int16(binary.LittleEndian.Uint16(data[8:10]))
	r.RX = int16(binary.LittleEndian.Uint16(data[10:12]))
	r.RY = int16(binary.LittleEndian.Uint16(data[12:14]))
	return nil
}
