//go:build linux

package hidraw_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/internal/hidraw"
)

func openNode(t *testing.T) (*hidraw.Device, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "node")
	assert.NoError(t, os.WriteFile(path, nil, 0o600))
	dev, err := hidraw.Open(path, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = dev.Close() })
	return dev, path
}

func TestSetReportOutputSendsIDByteOnce(t *testing.T) {
	dev, path := openNode(t)

	// Claw mode-switch shape: the id is already the first payload byte and
	// must appear exactly once on the wire.
	payload := []byte{0x0F, 0x00, 0x00, 0x3C, 0x24, 0x01}
	assert.NoError(t, dev.SetReport(device.ReportOutput, payload[0], payload))

	wire, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, payload, wire)
}

func TestSetReportRejectsEmptyData(t *testing.T) {
	dev, _ := openNode(t)
	assert.Error(t, dev.SetReport(device.ReportOutput, 0x0F, nil))
}

func TestSetReportRejectsUnknownType(t *testing.T) {
	dev, _ := openNode(t)
	assert.Error(t, dev.SetReport(device.ReportInput, 0x01, []byte{0x01}))
}
