//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

var errNoServiceManager = errors.New("service installation is only supported on linux")

func install(device, mapping string, logger *slog.Logger) error {
	return errNoServiceManager
}

func uninstall(logger *slog.Logger) error {
	return errNoServiceManager
}
