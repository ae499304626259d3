package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Install registers prepad as a system service running the monitor command
// against a fixed device.
type Install struct {
	Device  string `arg:"" help:"Raw HID device path to monitor, e.g. /dev/hidraw0"`
	Mapping string `help:"Translation mapping file baked into the service invocation"`
}

func (i *Install) Run(logger *slog.Logger) error {
	return install(i.Device, i.Mapping, logger)
}

// Uninstall removes the system service.
type Uninstall struct{}

func (u *Uninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}

func currentExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exePath)
}
