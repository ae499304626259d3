package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/prepad/prepad/device/xbox360"
	"github.com/prepad/prepad/input"
)

// Devices prints the built-in compatible controller table, merged with any
// custom devices from the mapping file.
type Devices struct {
	Mapping string `help:"Translation mapping file (yaml or toml)" env:"PREPAD_MAPPING"`
}

func (d *Devices) Run(logger *slog.Logger) error {
	var custom []xbox360.CompatibleDevice
	if d.Mapping != "" {
		var err error
		_, custom, err = loadMapping(d.Mapping, logger)
		if err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VID\tPID\tDESCRIPTION")
	for _, dev := range xbox360.DeviceList(custom) {
		fmt.Fprintf(w, "%04x\t%04x\t%s\n", dev.VendorID, dev.ProductID, dev.Description)
	}
	return w.Flush()
}

// Keys prints every key name accepted in mapping files.
type Keys struct{}

func (k *Keys) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME")
	for _, code := range input.KnownKeyCodes() {
		fmt.Fprintf(w, "0x%02x\t%s\n", code, input.KeyName(code))
	}
	return w.Flush()
}
