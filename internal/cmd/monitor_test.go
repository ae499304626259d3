package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepad/prepad/input"
	"github.com/prepad/prepad/keyboard"
	"github.com/prepad/prepad/report"
)

// A modifier press pops a transition but produces no keystroke. Keys queued
// behind it in the same report must still come out of the same drain pass.
func TestDrainKeysResolvesKeysBehindModifier(t *testing.T) {
	cfg := input.DefaultConfig()
	cfg.ButtonMap[0] = 0xE1  // dpad-up (bit 0) to left shift
	cfg.ButtonMap[12] = 0x04 // A button (bit 12) to 'a'
	ctrl := input.New(cfg, nil, discard())

	state := keyboard.NewState(discard(), nil)

	// One report with both pressed queues [shift down, a down] in bit order.
	ctrl.HandleReport(report.Report{Buttons: report.ButtonDPadUp | report.ButtonA})

	var keys []keyboard.KeyData
	drainKeys(state, ctrl, func(kd keyboard.KeyData) { keys = append(keys, kd) })

	if assert.Len(t, keys, 1) {
		assert.Equal(t, 'A', keys[0].Unicode)
	}
	assert.Zero(t, ctrl.PendingKeys())
}

func TestDrainKeysEmptyQueue(t *testing.T) {
	ctrl := input.New(input.DefaultConfig(), nil, discard())
	state := keyboard.NewState(discard(), nil)

	called := false
	drainKeys(state, ctrl, func(keyboard.KeyData) { called = true })
	assert.False(t, called)
}
