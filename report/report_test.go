package report_test

import (
	"io"
	"testing"

	"github.com/prepad/prepad/report"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportLayout(t *testing.T) {
	r := report.Report{
		Buttons: report.ButtonA | report.ButtonDPadUp,
		LT:      0x80,
		RT:      0xFF,
		LX:      1000,
		LY:      -1000,
		RX:      -32768,
		RY:      32767,
	}

	b := r.BuildReport()
	assert.Len(t, b, report.Size)
	assert.Equal(t, byte(report.MsgType), b[0])
	assert.Equal(t, byte(report.MsgSize), b[1])
	assert.Equal(t, []byte{0x01, 0x10}, b[2:4], "buttons little-endian")
	assert.Equal(t, byte(0x80), b[4])
	assert.Equal(t, byte(0xFF), b[5])
	assert.Equal(t, []byte{0xE8, 0x03}, b[6:8], "LX little-endian")
	assert.Equal(t, []byte{0x00, 0x80}, b[10:12], "RX int16 min")
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, b[14:20], "reserved zero")
}

func TestReportRoundTrip(t *testing.T) {
	in := report.Report{Buttons: 0xF00F, LT: 1, RT: 254, LX: -32768, LY: 32767, RX: 42, RY: -42}

	data, err := in.MarshalBinary()
	assert.NoError(t, err)

	var out report.Report
	assert.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, in, out)
}

func TestUnmarshalShortBuffer(t *testing.T) {
	var r report.Report
	err := r.UnmarshalBinary(make([]byte, 13))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestUnmarshalIgnoresHeaderBytes(t *testing.T) {
	// Other message types share the interrupt endpoint; the header is not
	// validated, the field region is decoded regardless.
	b := make([]byte, report.Size)
	b[0] = 0x01
	b[1] = 0x03
	b[2] = 0x10

	var r report.Report
	assert.NoError(t, r.UnmarshalBinary(b))
	assert.Equal(t, uint16(report.ButtonStart), r.Buttons)
}
