package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyName(t *testing.T) {
	type testCase struct {
		name    string
		value   string
		want    uint8
		wantErr bool
	}
	cases := []testCase{
		{"semantic name", "KeyEnter", 0x28, false},
		{"case insensitive", "keyenter", 0x28, false},
		{"mouse function", "MouseLeft", FuncMouseLeft, false},
		{"scroll function", "ScrollDown", FuncScrollDown, false},
		{"disabled", "Disabled", MappingDisabled, false},
		{"disabled alias", "None", MappingDisabled, false},
		{"hex with prefix", "0x28", 0x28, false},
		{"bare hex", "4f", 0x4F, false},
		{"whitespace trimmed", "  KeySpace  ", 0x2C, false},
		{"empty", "", MappingDisabled, true},
		{"unknown", "KeyBogus", MappingDisabled, true},
		{"hex too long", "0x1234", MappingDisabled, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKeyName(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyNameRoundTrip(t *testing.T) {
	// Every canonical name must parse back to its own code.
	for _, code := range KnownKeyCodes() {
		name := KeyName(code)
		got, err := ParseKeyName(name)
		assert.NoError(t, err, "name %q", name)
		assert.Equal(t, code, got, "name %q", name)
	}
}

func TestKeyNameFallsBackToHex(t *testing.T) {
	assert.Equal(t, "0x32", KeyName(0x32))
}
