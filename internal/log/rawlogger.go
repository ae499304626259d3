package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger handles raw HID traffic logs with optional file output.
type RawLogger interface {
	// Report logs an input report read from the device.
	Report(data []byte)
	// Control logs a control transfer sent to the device.
	Control(data []byte)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (r *rawLogger) Report(data []byte) { r.log("D->H", data) }
func (r *rawLogger) Control(data []byte) { r.log("H->D", data) }

// log emits a single-line raw packet log with timestamp and hex dump.
func (r *rawLogger) log(dir string, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s report: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
