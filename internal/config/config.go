// Package config defines the top-level CLI surface parsed by kong.
package config

import (
	"github.com/prepad/prepad/internal/cmd"
)

// Log holds the logging flags shared by every command.
type Log struct {
	Level   string `help:"Log level (trace|debug|info|warn|error)" default:"info" env:"PREPAD_LOG_LEVEL"`
	File    string `help:"Also write logs to this file (JSON lines)" env:"PREPAD_LOG_FILE"`
	RawFile string `help:"Write raw HID traffic hex dumps to this file" env:"PREPAD_LOG_RAW_FILE"`
}

// CLI is the root command tree.
type CLI struct {
	Log    Log    `embed:"" prefix:"log."`
	Config string `help:"Path to a config file" env:"PREPAD_CONFIG"`

	Monitor   cmd.Monitor       `cmd:"" help:"Translate gamepad input from a raw HID device and log the resulting keystrokes and pointer events"`
	Devices   cmd.Devices       `cmd:"" help:"List compatible controllers"`
	Keys      cmd.Keys          `cmd:"" help:"List key names accepted in mapping files"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file utilities"`
	Install   cmd.Install       `cmd:"" help:"Install the translation pipeline as a system service"`
	Uninstall cmd.Uninstall     `cmd:"" help:"Remove the system service"`
}
