package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/philipp01105/nlogcolor/handler/consolehandler"
	"github.com/philipp01105/nlogcolor/logger"
)

// reloadDelay lets editors finish writing before the file is read.
var reloadDelay = 100 * time.Millisecond

// Overlay adjusts a freshly loaded config before it is applied, typically
// to put command line flags back on top of the file. See Flags.Overlay.
type Overlay func(Config) Config

// Watch re-applies the file at path to h whenever it changes, until ctx is
// done. Each loaded config passes through overlay first; a nil overlay
// applies the file as is. Target and level changes are reported but need a
// restart. A nil log uses logger.Default().
//
// The parent directory is watched, so the file may be replaced, removed
// and created again without losing the watch.
func Watch(ctx context.Context, path string, h *consolehandler.ColorConsoleHandler, overlay Overlay, log *logger.Logger) error {
	if log == nil {
		log = logger.Default()
	}
	if overlay == nil {
		overlay = func(c Config) Config { return c }
	}
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}
	current, err := Load(resolved)
	if err != nil {
		return err
	}
	current = overlay(current)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn("failed to close config watcher", logger.Err(err))
		}
	}()

	dir := filepath.Dir(resolved)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir %s: %w", dir, err)
	}
	log.Debug("watching config file", logger.String("path", resolved))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != resolved {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !sleepCtx(ctx, reloadDelay) {
				return nil
			}

			if _, err := os.Stat(resolved); errors.Is(err, os.ErrNotExist) {
				log.Warn("config file removed, keeping current settings", logger.String("path", resolved))
				continue
			}

			next, err := reload(resolved, h, overlay)
			if err != nil {
				log.Error("failed to reload config", logger.String("path", resolved), logger.Err(err))
				continue
			}
			if next.Target != current.Target || next.Level != current.Level {
				log.Warn("target and level changes take effect after a restart",
					logger.String("target", next.Target),
					logger.LevelField("level", next.Level))
			}
			current = next
			log.Info("config reloaded",
				logger.String("color_mode", next.ColorMode.String()),
				logger.String("format", next.Format))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", logger.Err(err))
		}
	}
}

func reload(path string, h *consolehandler.ColorConsoleHandler, overlay Overlay) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	cfg = overlay(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Apply(h); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
