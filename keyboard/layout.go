package keyboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	// Valid usage codes are 0x04-0x65 plus the modifier block 0xE0-0xE7.
	minUsage         = 0x04
	maxPlainUsage    = 0x65
	minModifierUsage = 0xE0
	maxModifierUsage = 0xE7

	plainUsageCount = maxPlainUsage - minUsage + 1
	usageCount      = plainUsageCount + maxModifierUsage - minModifierUsage + 1
)

// DeadKey pairs a non-spacing descriptor with the physical-key variants that
// may follow it.
type DeadKey struct {
	Key      Descriptor
	Variants []Descriptor
}

// Layout is one immutable key conversion table. Swapping layouts replaces
// the whole object; a Layout is never mutated after construction.
type Layout struct {
	Name     string
	table    [usageCount]Descriptor
	defined  [usageCount]bool
	deadKeys []DeadKey
}

func usageIndex(usage uint8) (int, bool) {
	switch {
	case usage >= minUsage && usage <= maxPlainUsage:
		return int(usage - minUsage), true
	case usage >= minModifierUsage && usage <= maxModifierUsage:
		return plainUsageCount + int(usage-minModifierUsage), true
	default:
		return 0, false
	}
}

// NewLayout builds a conversion table from an ordered descriptor list.
// A non-spacing descriptor collects the dependency descriptors immediately
// following it as its variants. The keypad Enter entry is duplicated from
// the main Enter key, as both share one layout definition.
func NewLayout(name string, descriptors []Descriptor) *Layout {
	l := &Layout{Name: name}
	for i := 0; i < len(descriptors); i++ {
		d := descriptors[i]
		idx, ok := usageIndex(usageForKey[d.Key])
		if !ok {
			continue
		}
		l.table[idx] = d
		l.defined[idx] = true

		if d.Modifier == ModDeadKey {
			var variants []Descriptor
			for i+1 < len(descriptors) && descriptors[i+1].Modifier == ModDeadKeyDependency {
				i++
				variants = append(variants, descriptors[i])
			}
			l.deadKeys = append(l.deadKeys, DeadKey{Key: d, Variants: variants})
		}
	}

	if enter, ok := usageIndex(0x28); ok && l.defined[enter] {
		if pad, ok := usageIndex(0x58); ok {
			l.table[pad] = l.table[enter]
			l.defined[pad] = true
		}
	}
	return l
}

// Descriptor returns the entry for a USB usage code; ok is false for codes
// outside the valid ranges or positions the layout leaves empty.
func (l *Layout) Descriptor(usage uint8) (*Descriptor, bool) {
	idx, ok := usageIndex(usage)
	if !ok || !l.defined[idx] {
		return nil, false
	}
	return &l.table[idx], true
}

// DeadKeyFor returns the dead-key record whose trigger sits on the same
// physical key as the descriptor.
func (l *Layout) DeadKeyFor(d *Descriptor) *DeadKey {
	for i := range l.deadKeys {
		if l.deadKeys[i].Key.Key == d.Key {
			return &l.deadKeys[i]
		}
	}
	return nil
}

// composedVariant finds the variant attached to a dead key for the given
// physical key. The plain descriptor is returned unchanged when no variant
// matches.
func (n *DeadKey) composedVariant(d *Descriptor) *Descriptor {
	for i := range n.Variants {
		if n.Variants[i].Key == d.Key {
			return &n.Variants[i]
		}
	}
	return d
}

// layoutFile is the on-disk layout schema, shared between the YAML and TOML
// loaders.
type layoutFile struct {
	Name string          `yaml:"name" toml:"name"`
	Keys []layoutFileKey `yaml:"keys" toml:"keys"`
}

type layoutFileKey struct {
	Key          string   `yaml:"key" toml:"key"`
	Unicode      string   `yaml:"unicode" toml:"unicode"`
	Shifted      string   `yaml:"shifted" toml:"shifted"`
	AltGr        string   `yaml:"altgr" toml:"altgr"`
	ShiftedAltGr string   `yaml:"shifted_altgr" toml:"shifted_altgr"`
	Modifier     string   `yaml:"modifier" toml:"modifier"`
	Affected     []string `yaml:"affected" toml:"affected"`
}

var keyNames = func() map[string]PhysicalKey {
	names := map[string]PhysicalKey{
		"lctrl": KeyLCtrl, "a0": KeyA0, "lalt": KeyLAlt, "space": KeySpaceBar,
		"a2": KeyA2, "a3": KeyA3, "a4": KeyA4, "rctrl": KeyRCtrl,
		"left": KeyLeftArrow, "down": KeyDownArrow, "right": KeyRightArrow, "up": KeyUpArrow,
		"pad0": KeyZero, "pad1": KeyOne, "pad2": KeyTwo, "pad3": KeyThree,
		"pad4": KeyFour, "pad5": KeyFive, "pad6": KeySix, "pad7": KeySeven,
		"pad8": KeyEight, "pad9": KeyNine, "padperiod": KeyPeriod,
		"padplus": KeyPlus, "padminus": KeyMinus, "padslash": KeySlash, "padasterisk": KeyAsterisk,
		"enter": KeyEnter, "lshift": KeyLShift, "rshift": KeyRShift,
		"capslock": KeyCapsLock, "tab": KeyTab, "backspace": KeyBackSpace,
		"del": KeyDel, "end": KeyEnd, "pgdn": KeyPgDn, "ins": KeyIns,
		"home": KeyHome, "pgup": KeyPgUp, "numlock": KeyNLck,
		"esc": KeyEsc, "print": KeyPrint, "scrolllock": KeySLck, "pause": KeyPause,
	}
	row := func(prefix string, first PhysicalKey, count int) {
		for i := 0; i < count; i++ {
			names[fmt.Sprintf("%s%d", prefix, i)] = first + PhysicalKey(i)
		}
	}
	row("b", KeyB0, 11)
	row("e", KeyE0, 13)
	// C and D rows start at 1.
	for i := 0; i < 12; i++ {
		names[fmt.Sprintf("c%d", i+1)] = KeyC1 + PhysicalKey(i)
	}
	for i := 0; i < 13; i++ {
		names[fmt.Sprintf("d%d", i+1)] = KeyD1 + PhysicalKey(i)
	}
	for i := 0; i < 12; i++ {
		names[fmt.Sprintf("f%d", i+1)] = KeyF1 + PhysicalKey(i)
	}
	return names
}()

var modifierNames = map[string]Modifier{
	"":            ModNone,
	"none":        ModNone,
	"lctrl":       ModLeftControl,
	"rctrl":       ModRightControl,
	"lalt":        ModLeftAlt,
	"ralt":        ModRightAlt,
	"altgr":       ModAltGr,
	"insert":      ModInsert,
	"delete":      ModDelete,
	"pgdn":        ModPageDown,
	"pgup":        ModPageUp,
	"home":        ModHome,
	"end":         ModEnd,
	"lshift":      ModLeftShift,
	"rshift":      ModRightShift,
	"capslock":    ModCapsLock,
	"numlock":     ModNumLock,
	"left":        ModLeftArrow,
	"right":       ModRightArrow,
	"down":        ModDownArrow,
	"up":          ModUpArrow,
	"deadkey":     ModDeadKey,
	"deadkey-dep": ModDeadKeyDependency,
	"f1":          ModF1, "f2": ModF2, "f3": ModF3, "f4": ModF4,
	"f5": ModF5, "f6": ModF6, "f7": ModF7, "f8": ModF8,
	"f9": ModF9, "f10": ModF10, "f11": ModF11, "f12": ModF12,
	"print":      ModPrint,
	"sysreq":     ModSysRequest,
	"scrolllock": ModScrollLock,
	"pause":      ModPause,
	"break":      ModBreak,
	"llogo":      ModLeftLogo,
	"rlogo":      ModRightLogo,
	"menu":       ModMenu,
}

func (k *layoutFileKey) descriptor() (Descriptor, error) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(k.Key))]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown key %q", k.Key)
	}
	mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(k.Modifier))]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown modifier %q", k.Modifier)
	}

	d := Descriptor{Key: key, Modifier: mod}
	var err error
	if d.Unicode, err = parseRune(k.Unicode); err != nil {
		return Descriptor{}, fmt.Errorf("key %q: %w", k.Key, err)
	}
	if d.ShiftedUnicode, err = parseRune(k.Shifted); err != nil {
		return Descriptor{}, fmt.Errorf("key %q: %w", k.Key, err)
	}
	if d.AltGrUnicode, err = parseRune(k.AltGr); err != nil {
		return Descriptor{}, fmt.Errorf("key %q: %w", k.Key, err)
	}
	if d.ShiftedAltGrUnicode, err = parseRune(k.ShiftedAltGr); err != nil {
		return Descriptor{}, fmt.Errorf("key %q: %w", k.Key, err)
	}

	for _, a := range k.Affected {
		switch strings.ToLower(strings.TrimSpace(a)) {
		case "shift":
			d.Affected |= AffectedByShift
		case "caps":
			d.Affected |= AffectedByCapsLock
		case "numlock":
			d.Affected |= AffectedByNumLock
		default:
			return Descriptor{}, fmt.Errorf("key %q: unknown affected flag %q", k.Key, a)
		}
	}
	return d, nil
}

func parseRune(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r[0], nil
}

// LoadFile reads a layout definition, selecting the codec by file
// extension (.yaml/.yml or .toml).
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	var file layoutFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported layout format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	descriptors := make([]Descriptor, 0, len(file.Keys))
	for i := range file.Keys {
		d, err := file.Keys[i].descriptor()
		if err != nil {
			return nil, fmt.Errorf("layout entry %d: %w", i, err)
		}
		descriptors = append(descriptors, d)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return NewLayout(file.Name, descriptors), nil
}
