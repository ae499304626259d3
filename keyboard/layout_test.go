package keyboard_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prepad/prepad/keyboard"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayoutTable(t *testing.T) {
	l := keyboard.DefaultLayout()
	assert.Equal(t, "en-US", l.Name)

	d, ok := l.Descriptor(usageA)
	assert.True(t, ok)
	assert.Equal(t, 'a', d.Unicode)
	assert.Equal(t, 'A', d.ShiftedUnicode)

	// Keypad Enter mirrors the main Enter entry.
	enter, ok := l.Descriptor(usageEnter)
	assert.True(t, ok)
	pad, ok := l.Descriptor(usagePadEnter)
	assert.True(t, ok)
	assert.Equal(t, enter.Unicode, pad.Unicode)
}

func TestDescriptorBounds(t *testing.T) {
	l := keyboard.DefaultLayout()

	for _, usage := range []uint8{0x00, 0x03, 0x66, 0xDF, 0xE8, 0xFF} {
		_, ok := l.Descriptor(usage)
		assert.False(t, ok, "usage 0x%02X", usage)
	}

	// Modifier block is valid.
	d, ok := l.Descriptor(usageLShift)
	assert.True(t, ok)
	assert.Equal(t, keyboard.ModLeftShift, d.Modifier)
}

func TestDeadKeyCollection(t *testing.T) {
	l := keyboard.NewLayout("dead", []keyboard.Descriptor{
		{Key: keyboard.KeyE0, Unicode: '`', Modifier: keyboard.ModDeadKey},
		{Key: keyboard.KeyC1, Unicode: 'à', Modifier: keyboard.ModDeadKeyDependency},
		{Key: keyboard.KeyD3, Unicode: 'è', Modifier: keyboard.ModDeadKeyDependency},
		{Key: keyboard.KeyC2, Unicode: 's', Modifier: keyboard.ModNone},
	})

	trigger, ok := l.Descriptor(0x35)
	assert.True(t, ok)
	dk := l.DeadKeyFor(trigger)
	assert.NotNil(t, dk)
	assert.Len(t, dk.Variants, 2)

	plain, ok := l.Descriptor(0x16)
	assert.True(t, ok)
	assert.Nil(t, l.DeadKeyFor(plain))
}

const yamlLayout = `name: test-layout
keys:
  - key: c1
    unicode: a
    shifted: A
    affected: [shift, caps]
  - key: e1
    unicode: "1"
    shifted: "!"
    affected: [shift]
  - key: e0
    unicode: "´"
    modifier: deadkey
  - key: c1
    unicode: "á"
    modifier: deadkey-dep
`

const tomlLayout = `name = "test-layout"

[[keys]]
key = "c1"
unicode = "a"
shifted = "A"
affected = ["shift", "caps"]
`

func writeLayout(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	l, err := keyboard.LoadFile(writeLayout(t, "test.yaml", yamlLayout))
	assert.NoError(t, err)
	assert.Equal(t, "test-layout", l.Name)

	d, ok := l.Descriptor(usageA)
	assert.True(t, ok)
	assert.Equal(t, 'a', d.Unicode)
	assert.Equal(t, 'A', d.ShiftedUnicode)
	assert.Equal(t, uint16(keyboard.AffectedByShift|keyboard.AffectedByCapsLock), d.Affected)

	dead, ok := l.Descriptor(0x35)
	assert.True(t, ok)
	assert.Equal(t, keyboard.ModDeadKey, dead.Modifier)
	assert.NotNil(t, l.DeadKeyFor(dead))
}

func TestLoadFileTOML(t *testing.T) {
	l, err := keyboard.LoadFile(writeLayout(t, "test.toml", tomlLayout))
	assert.NoError(t, err)

	d, ok := l.Descriptor(usageA)
	assert.True(t, ok)
	assert.Equal(t, 'a', d.Unicode)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := keyboard.LoadFile(writeLayout(t, "test.ini", "x"))
		assert.Error(t, err)
	})

	t.Run("unknown key name", func(t *testing.T) {
		_, err := keyboard.LoadFile(writeLayout(t, "bad.yaml", "keys:\n  - key: zz9\n"))
		assert.Error(t, err)
	})

	t.Run("multi-rune unicode", func(t *testing.T) {
		_, err := keyboard.LoadFile(writeLayout(t, "bad2.yaml", "keys:\n  - key: c1\n    unicode: ab\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := keyboard.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("name defaults to file base", func(t *testing.T) {
		l, err := keyboard.LoadFile(writeLayout(t, "nordic.yaml", "keys: []\n"))
		assert.NoError(t, err)
		assert.Equal(t, "nordic", l.Name)
	})
}
