package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prepad/prepad/device"
	"github.com/prepad/prepad/device/ally"
	"github.com/prepad/prepad/device/xbox360"
	"github.com/prepad/prepad/input"
	"github.com/prepad/prepad/internal/log"
	"github.com/prepad/prepad/internal/loop"
	"github.com/prepad/prepad/keyboard"
	"github.com/prepad/prepad/transfer"
)

// rawDevice is what a platform device backend must provide: the interrupt
// endpoint for the transfer manager plus the control surface for vendor
// bring-up.
type rawDevice interface {
	transfer.Endpoint
	device.HIDControl
	Info() (vendor, product uint16, err error)
	Path() string
	Close() error
}

// Monitor runs the full translation pipeline against one hidraw device and
// logs every resolved keystroke and pointer snapshot.
type Monitor struct {
	Device      string `arg:"" help:"Raw HID device path, e.g. /dev/hidraw0" env:"PREPAD_DEVICE"`
	Mapping     string `help:"Translation mapping file (yaml or toml)" env:"PREPAD_MAPPING"`
	Layout      string `help:"Keyboard layout file, reloaded on change" env:"PREPAD_LAYOUT"`
	SyncPoll    bool   `help:"Use bounded synchronous polling instead of async transfers" env:"PREPAD_SYNC_POLL"`
	PartialKeys bool   `help:"Report keys that resolve to neither scan code nor unicode"`
	Force       bool   `help:"Skip the compatible device check"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, custom, err := loadMapping(m.Mapping, logger)
	if err != nil {
		return err
	}

	dev, err := openDevice(m.Device, rawLogger)
	if err != nil {
		return fmt.Errorf("opening device: %w", err)
	}
	defer func() { _ = dev.Close() }()

	normName, err := prepareDevice(dev, custom, m.Force, logger)
	if err != nil {
		return err
	}
	norm, err := device.LookupNormalizer(normName)
	if err != nil {
		return err
	}

	lp := loop.New()
	defer lp.Close()

	ctrl := input.New(cfg, norm, logger)
	ctrl.SetRepeatTimer(lp.NewTimer(ctrl.RepeatTick))

	state := keyboard.NewState(logger, func() {
		logger.Warn("ctrl+alt+del pressed, requesting warm reset")
		stop()
	})
	state.PartialKeys = m.PartialKeys

	if m.Layout != "" {
		watcher, err := keyboard.WatchLayout(m.Layout, state, logger)
		if err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}
		defer func() { _ = watcher.Close() }()
	}

	sink := newEventSink(logger)
	handler := func(data []byte) {
		ctrl.HandleRaw(data)
		drainKeys(state, ctrl, sink.key)
		sink.pointer(ctrl.Pointer())
	}

	mode := transfer.ModeAsync
	if m.SyncPoll {
		mode = transfer.ModeSyncPoll
	}
	mgr := transfer.NewManager(dev, mode, lp, 64, handler, ctrl.CancelRepeat, logger)
	if err := mgr.Start(); err != nil {
		return fmt.Errorf("starting transfers: %w", err)
	}

	logger.Info("Translation pipeline running", "device", dev.Path(), "mode", mode)
	<-ctx.Done()
	logger.Info("Shutting down")
	mgr.Stop()
	return nil
}

// drainKeys pumps every queued transition through the keyboard state machine.
// A pop that yields no keystroke (modifier press, dead key recorded, dropped
// toggle) does not mean the queue is empty, so keep popping until the
// controller reports nothing pending.
func drainKeys(state *keyboard.State, ctrl *input.Controller, emit func(keyboard.KeyData)) {
	for {
		kd, ok := state.Next(ctrl)
		if ok {
			emit(kd)
			continue
		}
		if ctrl.PendingKeys() == 0 {
			return
		}
	}
}

// prepareDevice identifies the controller, runs any vendor bring-up sequence,
// and returns the normalizer name to use for its reports.
func prepareDevice(dev rawDevice, custom []xbox360.CompatibleDevice, force bool, logger *slog.Logger) (string, error) {
	vendor, product, err := dev.Info()
	if err != nil {
		return "", fmt.Errorf("querying device info: %w", err)
	}

	if vendor == ally.VendorID && product == ally.AllyXPID {
		logger.Info("Detected ASUS ROG Ally X", "vendor", fmt.Sprintf("%04x", vendor), "product", fmt.Sprintf("%04x", product))
		if err := ally.Initialize(dev, logger); err != nil {
			return "", fmt.Errorf("initializing device: %w", err)
		}
		return ally.Name, nil
	}

	list := xbox360.DeviceList(custom)
	entry, known := xbox360.Identify(list, vendor, product)
	switch {
	case known:
		logger.Info("Detected compatible controller", "description", entry.Description,
			"vendor", fmt.Sprintf("%04x", vendor), "product", fmt.Sprintf("%04x", product))
	case force:
		logger.Warn("Unknown controller, proceeding anyway",
			"vendor", fmt.Sprintf("%04x", vendor), "product", fmt.Sprintf("%04x", product))
	default:
		return "", fmt.Errorf("device %04x:%04x is not in the compatible device list (use --force to override)", vendor, product)
	}

	if xbox360.IsMsiClaw(vendor, product) {
		if err := xbox360.SwitchClawToXInput(dev, logger); err != nil {
			logger.Warn("MSI Claw XInput switch failed, reports may be unusable", "error", err)
		}
	}
	return xbox360.Name, nil
}

// eventSink logs resolved keystrokes and deduplicated pointer snapshots.
type eventSink struct {
	logger *slog.Logger
	last   input.PointerState
}

func newEventSink(logger *slog.Logger) *eventSink {
	return &eventSink{logger: logger}
}

func (s *eventSink) key(kd keyboard.KeyData) {
	attrs := []any{"scan", fmt.Sprintf("0x%04x", kd.ScanCode)}
	if kd.Unicode != 0 {
		attrs = append(attrs, "unicode", string(kd.Unicode))
	}
	m := kd.Modifiers
	if m.Ctrl || m.Shift || m.Alt {
		attrs = append(attrs, "ctrl", m.Ctrl, "shift", m.Shift, "alt", m.Alt)
	}
	s.logger.Info("key", attrs...)
}

func (s *eventSink) pointer(p input.PointerState) {
	if p == s.last {
		return
	}
	if p.DX != 0 || p.DY != 0 || p.DZ != 0 ||
		p.Left != s.last.Left || p.Right != s.last.Right || p.Middle != s.last.Middle {
		s.logger.Info("pointer", "dx", p.DX, "dy", p.DY, "scroll", p.DZ,
			"left", p.Left, "right", p.Right, "middle", p.Middle)
	}
	s.last = p
}
