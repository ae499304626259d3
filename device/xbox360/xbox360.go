// Package xbox360 handles controllers that already speak the canonical wired
// Xbox 360 report format. Normalization is a pass-through parse.
package xbox360

import (
	"errors"
	"fmt"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/report"
)

// Name is the registry key for XInput-class controllers.
const Name = "xbox360"

// ErrReportTooShort is returned for reports shorter than the stick region.
var ErrReportTooShort = errors.New("xbox360: report too short")

func init() {
	device.RegisterNormalizer(Name, normalizer{})
}

type normalizer struct{}

// Normalize parses a native report. The device sends the canonical layout on
// the wire, so this only validates length and decodes fields.
//
// Truncated reports are rejected wholesale. Some XInput stacks decode
// progressively (buttons at 4 bytes, triggers at 6), but a wired pad that
// truncates its fixed-size report is malfunctioning, and dropping the report
// keeps stale stick state out of the pipeline.
func (normalizer) Normalize(raw []byte) (report.Report, error) {
	var r report.Report
	if len(raw) < 14 {
		return r, fmt.Errorf("%w: %d bytes", ErrReportTooShort, len(raw))
	}
	if err := r.UnmarshalBinary(raw); err != nil {
		return report.Report{}, err
	}
	return r, nil
}
