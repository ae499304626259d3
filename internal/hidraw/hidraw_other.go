//go:build !linux

// Package hidraw opens Linux hidraw character devices. On other platforms
// opening always fails; the translation pipeline itself is portable.
package hidraw

import (
	"errors"

	"github.com/prepad/prepad/internal/log"
)

var errUnsupported = errors.New("hidraw devices are only available on linux")

// Device is unavailable on this platform.
type Device struct{}

// Open fails on non-linux platforms.
func Open(path string, rawLogger log.RawLogger) (*Device, error) {
	return nil, errUnsupported
}
