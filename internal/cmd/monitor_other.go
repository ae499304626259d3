//go:build !linux

package cmd

import (
	"errors"

	"github.com/prepad/prepad/internal/log"
)

func openDevice(path string, rawLogger log.RawLogger) (rawDevice, error) {
	return nil, errors.New("raw HID device access is only supported on linux")
}
