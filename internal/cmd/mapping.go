package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/prepad/prepad/device/xbox360"
	"github.com/prepad/prepad/input"
)

// mappingFile is the on-disk translation configuration. Key values are
// semantic names ("KeyEnter", "MouseLeft", "Disabled") or hex scan codes;
// zero-valued numeric fields fall back to the built-in defaults.
type mappingFile struct {
	TriggerThreshold *uint8 `yaml:"triggerThreshold" toml:"triggerThreshold"`
	LeftTrigger      string `yaml:"leftTrigger" toml:"leftTrigger"`
	RightTrigger     string `yaml:"rightTrigger" toml:"rightTrigger"`

	Buttons map[string]string `yaml:"buttons" toml:"buttons"`

	LeftStick  stickFile `yaml:"leftStick" toml:"leftStick"`
	RightStick stickFile `yaml:"rightStick" toml:"rightStick"`

	// Devices adds custom compatible devices as "VID:PID:Description".
	Devices []string `yaml:"devices" toml:"devices"`
}

type stickFile struct {
	Mode              string  `yaml:"mode" toml:"mode"`
	Deadzone          *uint16 `yaml:"deadzone" toml:"deadzone"`
	Saturation        *uint16 `yaml:"saturation" toml:"saturation"`
	MouseSensitivity  *uint8  `yaml:"mouseSensitivity" toml:"mouseSensitivity"`
	MouseMaxSpeed     *uint8  `yaml:"mouseMaxSpeed" toml:"mouseMaxSpeed"`
	MouseCurve        *uint8  `yaml:"mouseCurve" toml:"mouseCurve"`
	DirectionMode     *uint8  `yaml:"directionMode" toml:"directionMode"`
	Up                string  `yaml:"up" toml:"up"`
	Down              string  `yaml:"down" toml:"down"`
	Left              string  `yaml:"left" toml:"left"`
	Right             string  `yaml:"right" toml:"right"`
	ScrollSensitivity *uint8  `yaml:"scrollSensitivity" toml:"scrollSensitivity"`
	ScrollDeadzone    *uint16 `yaml:"scrollDeadzone" toml:"scrollDeadzone"`
}

// buttonNames orders the logical button bits for the config surface.
var buttonNames = []string{
	"dpadUp", "dpadDown", "dpadLeft", "dpadRight",
	"start", "back", "leftThumb", "rightThumb",
	"leftShoulder", "rightShoulder", "guide", "reserved",
	"a", "b", "x", "y",
}

// loadMapping reads a mapping file and overlays it onto the defaults. An
// empty path returns the defaults unchanged. The result is sanitized.
func loadMapping(path string, logger *slog.Logger) (*input.Config, []xbox360.CompatibleDevice, error) {
	cfg := input.DefaultConfig()
	if path == "" {
		cfg.Sanitize(logger)
		return cfg, nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading mapping: %w", err)
	}

	var file mappingFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, nil, fmt.Errorf("unsupported mapping format %q", ext)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parsing mapping: %w", err)
	}

	if file.TriggerThreshold != nil {
		cfg.TriggerThreshold = *file.TriggerThreshold
	}
	applyKey(&cfg.LeftTriggerKey, file.LeftTrigger, "leftTrigger", logger)
	applyKey(&cfg.RightTriggerKey, file.RightTrigger, "rightTrigger", logger)

	for name, value := range file.Buttons {
		idx := buttonIndex(name)
		if idx < 0 {
			logger.Warn("unknown button in mapping file, ignoring", "button", name)
			continue
		}
		applyKey(&cfg.ButtonMap[idx], value, name, logger)
	}

	file.LeftStick.apply(&cfg.LeftStick, logger)
	file.RightStick.apply(&cfg.RightStick, logger)

	var custom []xbox360.CompatibleDevice
	for _, spec := range file.Devices {
		dev, err := xbox360.ParseDeviceSpec(spec)
		if err != nil {
			logger.Warn("invalid custom device, ignoring", "spec", spec, "error", err)
			continue
		}
		custom = append(custom, dev)
	}

	cfg.Sanitize(logger)
	return cfg, custom, nil
}

func buttonIndex(name string) int {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

func applyKey(dst *uint8, value, field string, logger *slog.Logger) {
	if value == "" {
		return
	}
	code, err := input.ParseKeyName(value)
	if err != nil {
		logger.Warn("invalid key in mapping file, disabling", "field", field, "error", err)
	}
	*dst = code
}

func (s *stickFile) apply(dst *input.StickConfig, logger *slog.Logger) {
	switch strings.ToLower(s.Mode) {
	case "":
	case "mouse":
		dst.Mode = input.StickMouse
	case "keys":
		dst.Mode = input.StickKeys
	case "scroll":
		dst.Mode = input.StickScroll
	case "disabled":
		dst.Mode = input.StickDisabled
	default:
		logger.Warn("unknown stick mode, keeping default", "mode", s.Mode)
	}
	if s.Deadzone != nil {
		dst.Deadzone = *s.Deadzone
	}
	if s.Saturation != nil {
		dst.Saturation = *s.Saturation
	}
	if s.MouseSensitivity != nil {
		dst.MouseSensitivity = *s.MouseSensitivity
	}
	if s.MouseMaxSpeed != nil {
		dst.MouseMaxSpeed = *s.MouseMaxSpeed
	}
	if s.MouseCurve != nil {
		dst.MouseCurve = *s.MouseCurve
	}
	if s.DirectionMode != nil {
		dst.DirectionMode = *s.DirectionMode
	}
	applyKey(&dst.UpMapping, s.Up, "up", logger)
	applyKey(&dst.DownMapping, s.Down, "down", logger)
	applyKey(&dst.LeftMapping, s.Left, "left", logger)
	applyKey(&dst.RightMapping, s.Right, "right", logger)
	if s.ScrollSensitivity != nil {
		dst.ScrollSensitivity = *s.ScrollSensitivity
	}
	if s.ScrollDeadzone != nil {
		dst.ScrollDeadzone = *s.ScrollDeadzone
	}
}

// defaultMappingFile renders the built-in configuration as a template map
// for config init.
func defaultMappingFile() map[string]any {
	cfg := input.DefaultConfig()

	buttons := map[string]any{}
	for i, name := range buttonNames {
		buttons[name] = input.KeyName(cfg.ButtonMap[i])
	}

	stick := func(s *input.StickConfig) map[string]any {
		mode := "disabled"
		switch s.Mode {
		case input.StickMouse:
			mode = "mouse"
		case input.StickKeys:
			mode = "keys"
		case input.StickScroll:
			mode = "scroll"
		}
		return map[string]any{
			"mode":              mode,
			"deadzone":          s.Deadzone,
			"saturation":        s.Saturation,
			"mouseSensitivity":  s.MouseSensitivity,
			"mouseMaxSpeed":     s.MouseMaxSpeed,
			"mouseCurve":        s.MouseCurve,
			"directionMode":     s.DirectionMode,
			"up":                input.KeyName(s.UpMapping),
			"down":              input.KeyName(s.DownMapping),
			"left":              input.KeyName(s.LeftMapping),
			"right":             input.KeyName(s.RightMapping),
			"scrollSensitivity": s.ScrollSensitivity,
			"scrollDeadzone":    s.ScrollDeadzone,
		}
	}

	return map[string]any{
		"triggerThreshold": cfg.TriggerThreshold,
		"leftTrigger":      input.KeyName(cfg.LeftTriggerKey),
		"rightTrigger":     input.KeyName(cfg.RightTriggerKey),
		"buttons":          buttons,
		"leftStick":        stick(&cfg.LeftStick),
		"rightStick":       stick(&cfg.RightStick),
		"devices":          []string{},
	}
}
