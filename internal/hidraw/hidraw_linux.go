//go:build linux

// Package hidraw opens Linux hidraw character devices and exposes them as
// a transfer endpoint plus the HID control surface used by vendor bring-up.
package hidraw

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/internal/log"
	"github.com/prepad/prepad/transfer"
)

// hidraw ioctls, from linux/hidraw.h.
const (
	iocWrite = 1
	iocRead  = 2

	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNrShift | size<<iocSizeShift
}

func hidiocGRawInfo() uintptr {
	return ioc(iocRead, 'H', 0x03, unsafe.Sizeof(devInfo{}))
}

func hidiocSFeature(size int) uintptr {
	return ioc(iocRead|iocWrite, 'H', 0x06, uintptr(size))
}

func hidiocGFeature(size int) uintptr {
	return ioc(iocRead|iocWrite, 'H', 0x07, uintptr(size))
}

type devInfo struct {
	Bustype uint32
	Vendor  int16
	Product int16
}

// Device is an open hidraw node. It implements transfer.Endpoint and
// device.HIDControl.
type Device struct {
	fd   int
	path string
	raw  log.RawLogger

	mu     sync.Mutex
	cancel chan struct{}
	wg     sync.WaitGroup
}

var _ transfer.Endpoint = (*Device)(nil)
var _ device.HIDControl = (*Device)(nil)

// Open opens a hidraw node, e.g. /dev/hidraw0. rawLogger may be nil.
func Open(path string, rawLogger log.RawLogger) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	return &Device{fd: fd, path: path, raw: rawLogger}, nil
}

// Path returns the device node path.
func (d *Device) Path() string { return d.path }

// Info reads the vendor and product id of the underlying device.
func (d *Device) Info() (vendor, product uint16, err error) {
	var info devInfo
	if err := d.ioctl(hidiocGRawInfo(), unsafe.Pointer(&info)); err != nil {
		return 0, 0, fmt.Errorf("HIDIOCGRAWINFO on %s: %w", d.path, err)
	}
	return uint16(info.Vendor), uint16(info.Product), nil
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Poll performs one bounded synchronous read.
func (d *Device) Poll(buf []byte, timeout time.Duration) (int, error) {
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, transfer.ErrTimeout
		}
		return 0, err
	}
	if n == 0 {
		return 0, transfer.ErrTimeout
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLHUP) != 0 {
		return 0, fmt.Errorf("device %s gone", d.path)
	}
	rn, err := unix.Read(d.fd, buf)
	if err != nil {
		return 0, err
	}
	d.raw.Report(buf[:rn])
	return rn, nil
}

// SubmitAsync starts a continuous read goroutine that feeds handler per
// report. A read failure is delivered through the handler and stops the
// goroutine, matching the delete-on-error transfer model.
func (d *Device) SubmitAsync(handler func(data []byte, err error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return errors.New("async transfer already submitted")
	}
	cancel := make(chan struct{})
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		buf := make([]byte, 64)
		for {
			select {
			case <-cancel:
				return
			default:
			}
			n, err := d.Poll(buf, 100*time.Millisecond)
			if err != nil {
				if errors.Is(err, transfer.ErrTimeout) {
					continue
				}
				handler(nil, err)
				return
			}
			if n > 0 {
				handler(buf[:n], nil)
			}
		}
	}()
	return nil
}

// CancelAsync stops the read goroutine. No-op when nothing is submitted.
func (d *Device) CancelAsync() error {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()
	if cancel == nil {
		return nil
	}
	close(cancel)
	d.wg.Wait()
	return nil
}

// ClearHalt is a no-op: the kernel hid driver clears endpoint halts itself.
func (d *Device) ClearHalt() error { return nil }

// SetReport issues a feature report ioctl or an output report write. data
// already carries the report id at data[0] and goes on the wire unchanged;
// the kernel consumes exactly that one id byte.
func (d *Device) SetReport(typ device.ReportType, id uint8, data []byte) error {
	if len(data) == 0 {
		return errors.New("empty report data")
	}
	d.raw.Control(data)
	switch typ {
	case device.ReportFeature:
		return d.ioctl(hidiocSFeature(len(data)), unsafe.Pointer(&data[0]))
	case device.ReportOutput:
		_, err := unix.Write(d.fd, data)
		return err
	default:
		return fmt.Errorf("unsupported report type 0x%02x", uint8(typ))
	}
}

// GetReport reads a feature report. buf[0] receives the report id.
func (d *Device) GetReport(typ device.ReportType, id uint8, buf []byte) (int, error) {
	if typ != device.ReportFeature {
		return 0, fmt.Errorf("unsupported report type 0x%02x", uint8(typ))
	}
	if len(buf) == 0 {
		return 0, errors.New("empty report buffer")
	}
	buf[0] = id
	if err := d.ioctl(hidiocGFeature(len(buf)), unsafe.Pointer(&buf[0])); err != nil {
		return 0, err
	}
	return len(buf), nil
}

// SetProtocol is a no-op on hidraw; the kernel driver owns the protocol
// selection.
func (d *Device) SetProtocol(reportProtocol bool) error { return nil }

// SetIdle is a no-op on hidraw.
func (d *Device) SetIdle(duration uint8) error { return nil }

// Close releases the device node.
func (d *Device) Close() error {
	_ = d.CancelAsync()
	return unix.Close(d.fd)
}
