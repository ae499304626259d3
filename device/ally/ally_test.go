package ally_test

import (
	"encoding/binary"
	"testing"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/device/ally"
	"github.com/prepad/prepad/report"

	"github.com/stretchr/testify/assert"
)

// buildRaw assembles a 16-byte DirectInput payload (no report id).
func buildRaw(lx, ly, rx, ry uint16, lt, rt uint16, b0, b1, hat byte) []byte {
	raw := make([]byte, 16)
	binary.LittleEndian.PutUint16(raw[0:2], lx)
	binary.LittleEndian.PutUint16(raw[2:4], ly)
	binary.LittleEndian.PutUint16(raw[4:6], rx)
	binary.LittleEndian.PutUint16(raw[6:8], ry)
	binary.LittleEndian.PutUint16(raw[8:10], lt)
	binary.LittleEndian.PutUint16(raw[10:12], rt)
	raw[12] = b0
	raw[13] = b1
	raw[14] = hat
	return raw
}

func normalizer(t *testing.T) device.Normalizer {
	n, err := device.LookupNormalizer(ally.Name)
	assert.NoError(t, err)
	return n
}

func TestNormalizeCentered(t *testing.T) {
	n := normalizer(t)

	rep, err := n.Normalize(buildRaw(32768, 32768, 32768, 32768, 0, 0, 0, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, report.Report{}, rep)
}

func TestNormalizeAxisExtremes(t *testing.T) {
	n := normalizer(t)

	rep, err := n.Normalize(buildRaw(0, 65535, 65535, 0, 1023, 512, 0, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, int16(-32768), rep.LX)
	assert.Equal(t, int16(32767), rep.LY)
	assert.Equal(t, int16(32767), rep.RX)
	assert.Equal(t, int16(-32768), rep.RY)
	assert.Equal(t, uint8(255), rep.LT)
	assert.Equal(t, uint8(128), rep.RT)
}

func TestNormalizeHatSwitch(t *testing.T) {
	n := normalizer(t)

	type testCase struct {
		name    string
		hat     byte
		buttons uint16
	}
	cases := []testCase{
		{"neutral", 0, 0},
		{"up", 1, report.ButtonDPadUp},
		{"up-right", 2, report.ButtonDPadUp | report.ButtonDPadRight},
		{"right", 3, report.ButtonDPadRight},
		{"down-right", 4, report.ButtonDPadDown | report.ButtonDPadRight},
		{"down", 5, report.ButtonDPadDown},
		{"down-left", 6, report.ButtonDPadDown | report.ButtonDPadLeft},
		{"left", 7, report.ButtonDPadLeft},
		{"up-left", 8, report.ButtonDPadUp | report.ButtonDPadLeft},
		{"out of range ignored", 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := n.Normalize(buildRaw(32768, 32768, 32768, 32768, 0, 0, 0, 0, tc.hat))
			assert.NoError(t, err)
			assert.Equal(t, tc.buttons, rep.Buttons)
		})
	}
}

func TestNormalizeButtons(t *testing.T) {
	n := normalizer(t)

	// All byte-0 buttons plus L3/R3/Mode in byte 1.
	rep, err := n.Normalize(buildRaw(32768, 32768, 32768, 32768, 0, 0, 0xFF, 0x07, 0))
	assert.NoError(t, err)
	want := uint16(report.ButtonA | report.ButtonB | report.ButtonX | report.ButtonY |
		report.ButtonLShoulder | report.ButtonRShoulder | report.ButtonBack | report.ButtonStart |
		report.ButtonLThumb | report.ButtonRThumb | report.ButtonGuide)
	assert.Equal(t, want, rep.Buttons)
}

func TestNormalizeReportIDHandling(t *testing.T) {
	n := normalizer(t)
	payload := buildRaw(32768, 32768, 32768, 32768, 0, 0, 0x01, 0, 0)

	t.Run("id-prefixed report accepted", func(t *testing.T) {
		rep, err := n.Normalize(append([]byte{ally.ReportID}, payload...))
		assert.NoError(t, err)
		assert.Equal(t, uint16(report.ButtonA), rep.Buttons)
	})

	t.Run("wrong report id rejected", func(t *testing.T) {
		_, err := n.Normalize(append([]byte{0x05}, payload...))
		assert.ErrorIs(t, err, ally.ErrUnexpectedReportID)
	})

	t.Run("short report rejected", func(t *testing.T) {
		_, err := n.Normalize(payload[:15])
		assert.ErrorIs(t, err, ally.ErrReportTooShort)
	})
}
