package ally

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prepad/prepad/device"
)

// Vendor feature protocol constants
const (
	setReportID     = 0x5A // vendor feature report id
	featureCodePage = 0xD1
	cmdSetMode      = 0x01
	cmdCheckReady   = 0x0A
	modeGamepad     = 0x01
	ffReportID      = 0x0D
)

// ecInitString is the EC handshake the Windows driver sends before anything
// else. Without it the gamepad interface stays silent.
var ecInitString = []byte{0x5A, 'A', 'S', 'U', 'S', ' ', 'T', 'e', 'c', 'h', '.', 'I', 'n', 'c', '.', 0x00}

// Initialize runs the Ally X bring-up sequence: EC init string, ready check,
// report protocol, idle, gamepad mode and force-feedback disable. Steps after
// the EC string are best-effort; their failures are logged and skipped so a
// partially cooperative device still produces input.
func Initialize(ctl device.HIDControl, logger *slog.Logger) error {
	buf := make([]byte, 64)
	copy(buf, ecInitString)
	if err := ctl.SetReport(device.ReportFeature, setReportID, buf); err != nil {
		return fmt.Errorf("ec init string: %w", err)
	}
	time.Sleep(50 * time.Millisecond)

	if !waitReady(ctl) {
		logger.Warn("ally ready check failed, continuing anyway")
	}

	// Report protocol is required; boot protocol reports lack the gamepad
	// fields entirely.
	if err := ctl.SetProtocol(true); err != nil {
		logger.Warn("SET_PROTOCOL failed", "error", err)
	}
	time.Sleep(20 * time.Millisecond)

	if err := ctl.SetIdle(0); err != nil {
		logger.Warn("SET_IDLE failed", "error", err)
	}

	buf = make([]byte, 64)
	buf[0] = setReportID
	buf[1] = featureCodePage
	buf[2] = cmdSetMode
	buf[3] = 0x01 // payload length
	buf[4] = modeGamepad
	if err := ctl.SetReport(device.ReportFeature, setReportID, buf); err != nil {
		logger.Error("failed to set gamepad mode", "error", err)
		logger.Warn("device may not send interrupt data without gamepad mode")
	}
	time.Sleep(50 * time.Millisecond)

	disableForceFeedback(ctl, logger)

	logger.Info("ally x initialization completed")
	return nil
}

// waitReady polls the CMD_CHECK_READY feature report up to three times.
func waitReady(ctl device.HIDControl) bool {
	for retry := 0; retry < 3; retry++ {
		buf := make([]byte, 64)
		buf[0] = setReportID
		buf[1] = featureCodePage
		buf[2] = cmdCheckReady
		buf[3] = 0x01
		if err := ctl.SetReport(device.ReportFeature, setReportID, buf); err == nil {
			resp := make([]byte, 64)
			if _, err := ctl.GetReport(device.ReportFeature, ffReportID, resp); err == nil && resp[2] == cmdCheckReady {
				return true
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
	return false
}

// disableForceFeedback zeroes the rumble motors. Pre-boot has no consumer for
// haptics and a buzzing handheld during firmware setup reads as a fault.
func disableForceFeedback(ctl device.HIDControl, logger *slog.Logger) {
	pkt := []byte{ffReportID, 0x0F, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x00, 0xEB}
	if err := ctl.SetReport(device.ReportFeature, ffReportID, pkt); err != nil {
		logger.Warn("failed to disable force feedback", "error", err)
	}
	time.Sleep(50 * time.Millisecond)
}
