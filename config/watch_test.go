package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/console/consoletest"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
	"github.com/philipp01105/nlogcolor/handler/consolehandler"
	"github.com/philipp01105/nlogcolor/logger"
)

// watchLog returns a logger whose messages land in the returned recorder.
func watchLog() (*logger.Logger, *consoletest.Recorder) {
	rec := consoletest.New(false)
	h := consolehandler.NewColorConsoleHandler(consolehandler.ColorConfig{
		Device:    rec,
		Formatter: formatter.NewPatternFormatter("%v"),
	})
	return logger.NewBuilder().WithHandler(h).WithLevel(core.TraceLevel).Build(), rec
}

// startWatch runs Watch in the background and stops it when the test ends.
func startWatch(t *testing.T, path string, h *consolehandler.ColorConsoleHandler, overlay Overlay, log *logger.Logger) {
	t.Helper()
	reloadDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, h, overlay, log) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("Watch did not return after cancel")
		}
	})
}

// rewriteUntil rewrites path with content until cond holds, which also
// covers the window before the watcher is registered.
func rewriteUntil(t *testing.T, path, content string, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(content), 0o600)
		return cond()
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatch_AppliesChanges(t *testing.T) {
	path := writeConfig(t, `color_mode = "always"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	h, err := cfg.NewHandlerFor(consoletest.New(false), nil)
	require.NoError(t, err)

	log, _ := watchLog()
	startWatch(t, path, h, nil, log)

	rewriteUntil(t, path, "color_mode = \"never\"\n[colors]\ninfo = \"blue\"\n", func() bool {
		return h.ColorMode() == console.Never
	})
	assert.Equal(t, console.FgBlue, h.Color(core.InfoLevel))
}

func TestWatch_KeepsFlagOverrides(t *testing.T) {
	path := writeConfig(t, `color_mode = "always"`)

	flagged := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := DefaultFlags()
	flags.RegisterFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--color-mode", "never"}))
	overlay := flags.Overlay(fs, flagged)

	loaded, err := Load(path)
	require.NoError(t, err)
	cfg := overlay(loaded)
	h, err := cfg.NewHandlerFor(consoletest.New(true), nil)
	require.NoError(t, err)
	require.Equal(t, console.Never, h.ColorMode())

	log, _ := watchLog()
	startWatch(t, path, h, overlay, log)

	// Only the colors change in the file; the mode still comes from the flag.
	rewriteUntil(t, path, "color_mode = \"always\"\n[colors]\ninfo = \"blue\"\n", func() bool {
		return h.Color(core.InfoLevel) == console.FgBlue
	})
	assert.Equal(t, console.Never, h.ColorMode())
	assert.False(t, h.ShouldColor())
}

func TestWatch_KeepsSettingsOnBadFile(t *testing.T) {
	path := writeConfig(t, `color_mode = "always"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	h, err := cfg.NewHandlerFor(consoletest.New(true), nil)
	require.NoError(t, err)

	log, out := watchLog()
	startWatch(t, path, h, nil, log)

	rewriteUntil(t, path, "color_mode = \"always\"\n[colors]\ninfo = \"blue\"\n", func() bool {
		return h.Color(core.InfoLevel) == console.FgBlue
	})

	require.NoError(t, os.WriteFile(path, []byte(`color_mode = "sometimes"`), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(out.Output(), "failed to reload config")
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, console.Always, h.ColorMode())
	assert.Equal(t, console.FgBlue, h.Color(core.InfoLevel))
}

func TestWatch_SurvivesRemoval(t *testing.T) {
	path := writeConfig(t, `color_mode = "always"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	h, err := cfg.NewHandlerFor(consoletest.New(true), nil)
	require.NoError(t, err)

	log, out := watchLog()
	startWatch(t, path, h, nil, log)

	rewriteUntil(t, path, "color_mode = \"always\"\n[colors]\ninfo = \"blue\"\n", func() bool {
		return h.Color(core.InfoLevel) == console.FgBlue
	})

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		return strings.Contains(out.Output(), "config file removed")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, console.Always, h.ColorMode())

	// Long after the removal a new file is still picked up.
	time.Sleep(5 * reloadDelay)
	rewriteUntil(t, path, `color_mode = "never"`, func() bool {
		return h.ColorMode() == console.Never
	})
}

func TestWatch_FileCreatedLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.toml")
	h, err := Default().NewHandlerFor(consoletest.New(true), nil)
	require.NoError(t, err)

	log, _ := watchLog()
	startWatch(t, path, h, nil, log)

	rewriteUntil(t, path, `color_mode = "never"`, func() bool {
		return h.ColorMode() == console.Never
	})
}

func TestWatch_MissingDirectory(t *testing.T) {
	h, err := Default().NewHandlerFor(consoletest.New(true), nil)
	require.NoError(t, err)

	err = Watch(context.Background(), filepath.Join(t.TempDir(), "absent", "cfg.toml"), h, nil, nil)
	require.Error(t, err)
}
