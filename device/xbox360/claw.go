package xbox360

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prepad/prepad/device"
)

// MSI Claw identity. The Claw boots in DirectInput mode and must be switched
// to XInput before it produces canonical reports.
const (
	MsiVendorID   = 0x0DB0
	ClawProductID = 0x1901
)

const (
	clawReportID      = 0x0F
	clawCmdSwitchMode = 0x24
	clawCmdSyncToROM  = 0x22
	clawModeXInput    = 0x01
)

// IsMsiClaw reports whether a VID/PID pair is the MSI Claw.
func IsMsiClaw(vendor, product uint16) bool {
	return vendor == MsiVendorID && product == ClawProductID
}

// SwitchClawToXInput sends the vendor commands that move an MSI Claw from
// DirectInput to XInput mode. SYNC_TO_ROM persists the setting but is
// optional; its failure is logged and ignored.
func SwitchClawToXInput(ctl device.HIDControl, logger *slog.Logger) error {
	buf := make([]byte, 64)
	buf[0] = clawReportID
	buf[3] = 0x3C
	buf[4] = clawCmdSwitchMode
	buf[5] = clawModeXInput
	buf[6] = 0x00 // macro function disabled

	if err := ctl.SetReport(device.ReportOutput, clawReportID, buf); err != nil {
		return fmt.Errorf("switch mode: %w", err)
	}
	logger.Info("claw SWITCH_MODE sent")

	time.Sleep(50 * time.Millisecond)

	buf = make([]byte, 64)
	buf[0] = clawReportID
	buf[3] = 0x3C
	buf[4] = clawCmdSyncToROM

	if err := ctl.SetReport(device.ReportOutput, clawReportID, buf); err != nil {
		logger.Warn("claw SYNC_TO_ROM failed", "error", err)
	} else {
		logger.Info("claw SYNC_TO_ROM sent")
	}

	time.Sleep(100 * time.Millisecond)
	return nil
}
