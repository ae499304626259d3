package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prepad/prepad/input"

	"github.com/stretchr/testify/assert"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func writeMapping(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMappingDefaults(t *testing.T) {
	cfg, custom, err := loadMapping("", discard())
	assert.NoError(t, err)
	assert.Nil(t, custom)
	assert.Equal(t, input.DefaultConfig(), cfg)
}

func TestLoadMappingYAMLOverlay(t *testing.T) {
	path := writeMapping(t, "mapping.yaml", `
triggerThreshold: 64
leftTrigger: KeySpace
buttons:
  a: KeyEnter
  guide: Disabled
leftStick:
  mode: keys
  deadzone: 9000
  up: KeyW
rightStick:
  mode: disabled
devices:
  - "1234:5678:Bench Pad"
`)

	cfg, custom, err := loadMapping(path, discard())
	assert.NoError(t, err)

	assert.Equal(t, uint8(64), cfg.TriggerThreshold)
	assert.Equal(t, uint8(0x2C), cfg.LeftTriggerKey)
	assert.Equal(t, uint8(0x28), cfg.ButtonMap[12], "a button")
	assert.Equal(t, uint8(input.MappingDisabled), cfg.ButtonMap[10], "guide disabled")
	assert.Equal(t, uint8(0x52), cfg.ButtonMap[0], "unlisted buttons keep defaults")

	assert.Equal(t, input.StickKeys, cfg.LeftStick.Mode)
	assert.Equal(t, uint16(9000), cfg.LeftStick.Deadzone)
	assert.Equal(t, uint8(0x1A), cfg.LeftStick.UpMapping)
	assert.Equal(t, uint8(0x51), cfg.LeftStick.DownMapping, "unset directions keep defaults")
	assert.Equal(t, input.StickDisabled, cfg.RightStick.Mode)

	assert.Len(t, custom, 1)
	assert.Equal(t, uint16(0x1234), custom[0].VendorID)
	assert.Equal(t, "Bench Pad", custom[0].Description)
}

func TestLoadMappingTOML(t *testing.T) {
	path := writeMapping(t, "mapping.toml", `
triggerThreshold = 200

[buttons]
b = "KeyEsc"

[leftStick]
mode = "mouse"
mouseSensitivity = 80
`)

	cfg, _, err := loadMapping(path, discard())
	assert.NoError(t, err)
	assert.Equal(t, uint8(200), cfg.TriggerThreshold)
	assert.Equal(t, uint8(0x29), cfg.ButtonMap[13])
	assert.Equal(t, input.StickMouse, cfg.LeftStick.Mode)
	assert.Equal(t, uint8(80), cfg.LeftStick.MouseSensitivity)
}

func TestLoadMappingBadValues(t *testing.T) {
	path := writeMapping(t, "mapping.yaml", `
leftTrigger: KeyBogus
buttons:
  a: KeyNope
  notAButton: KeyEnter
leftStick:
  mode: warp
devices:
  - "oops"
`)

	cfg, custom, err := loadMapping(path, discard())
	assert.NoError(t, err, "bad values degrade, they never fail the load")
	assert.Equal(t, uint8(input.MappingDisabled), cfg.LeftTriggerKey)
	assert.Equal(t, uint8(input.MappingDisabled), cfg.ButtonMap[12])
	assert.Equal(t, input.DefaultConfig().LeftStick.Mode, cfg.LeftStick.Mode, "unknown mode keeps default")
	assert.Empty(t, custom, "invalid device specs are skipped")
}

func TestLoadMappingErrors(t *testing.T) {
	_, _, err := loadMapping(filepath.Join(t.TempDir(), "missing.yaml"), discard())
	assert.Error(t, err)

	_, _, err = loadMapping(writeMapping(t, "mapping.ini", "x"), discard())
	assert.Error(t, err)

	_, _, err = loadMapping(writeMapping(t, "broken.yaml", "buttons: [unclosed"), discard())
	assert.Error(t, err)
}

func TestDefaultMappingFileRoundTrip(t *testing.T) {
	root := defaultMappingFile()

	buttons, ok := root["buttons"].(map[string]any)
	assert.True(t, ok)
	assert.Len(t, buttons, 16)
	assert.Equal(t, "KeyEnter", buttons["a"])
	assert.Equal(t, "Disabled", buttons["reserved"])

	left, ok := root["leftStick"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "mouse", left["mode"])

	// Every generated key value must parse back.
	for name, v := range buttons {
		_, err := input.ParseKeyName(v.(string))
		assert.NoError(t, err, "button %s", name)
	}
}
