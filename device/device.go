// Package device provides common interfaces and the normalizer registry for
// supported controller families.
package device

import (
	"fmt"
	"sync"

	"github.com/prepad/prepad/report"
)

// Normalizer adapts one vendor's raw interrupt report into the canonical
// report. Implementations are pure: no side effects, no retained state.
type Normalizer interface {
	// Normalize converts raw bytes into a canonical report. A non-nil error
	// means the report must be dropped; the device stays usable.
	Normalize(raw []byte) (report.Report, error)
}

// ReportType selects the HID report kind for control requests.
type ReportType uint8

const (
	ReportInput   ReportType = 0x01
	ReportOutput  ReportType = 0x02
	ReportFeature ReportType = 0x03
)

// HIDControl is the control-endpoint surface needed for vendor bring-up
// sequences. It is deliberately narrower than a USB stack: just the class
// requests the supported devices use.
type HIDControl interface {
	// SetReport sends a report. data carries the numbered report id at
	// data[0]; id duplicates it for backends that encode it out of band.
	SetReport(typ ReportType, id uint8, data []byte) error
	GetReport(typ ReportType, id uint8, buf []byte) (int, error)
	// SetProtocol selects report protocol (true) or boot protocol (false).
	SetProtocol(reportProtocol bool) error
	// SetIdle sets the idle duration; 0 means indefinite.
	SetIdle(duration uint8) error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Normalizer{}
)

// RegisterNormalizer adds a normalizer under a device family name. Called
// from init() in the device packages; duplicate names panic.
func RegisterNormalizer(name string, n Normalizer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("device: duplicate normalizer registration: " + name)
	}
	registry[name] = n
}

// LookupNormalizer returns the normalizer registered under name.
func LookupNormalizer(name string) (Normalizer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	n, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("device: unknown device type %q", name)
	}
	return n, nil
}

// Names returns the registered device family names.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
