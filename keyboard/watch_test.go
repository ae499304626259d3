package keyboard_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/prepad/prepad/keyboard"

	"github.com/stretchr/testify/assert"
)

func TestWatchLayoutInitialLoad(t *testing.T) {
	path := writeLayout(t, "test.yaml", yamlLayout)
	state := keyboard.NewState(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	w, err := keyboard.WatchLayout(path, state, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	assert.Equal(t, "test-layout", state.Layout().Name)
}

func TestWatchLayoutMissingFile(t *testing.T) {
	state := keyboard.NewState(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	_, err := keyboard.WatchLayout(filepath.Join(t.TempDir(), "nope.yaml"), state, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
	assert.Equal(t, "en-US", state.Layout().Name, "failed watch leaves the built-in layout")
}
