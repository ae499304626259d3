//go:build linux

package cmd

import (
	"github.com/prepad/prepad/internal/hidraw"
	"github.com/prepad/prepad/internal/log"
)

func openDevice(path string, rawLogger log.RawLogger) (rawDevice, error) {
	return hidraw.Open(path, rawLogger)
}
