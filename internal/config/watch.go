package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/providers/file"

	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
)

// Watcher reloads the config file when it changes and hands valid results to a callback.
type Watcher struct {
	path     string
	provider *file.File
	logger   *slog.Logger
	onChange func(*Config)
}

// NewWatcher prepares a watcher for path. Nothing is watched until Start.
func NewWatcher(path string, logger *slog.Logger, onChange func(*Config)) *Watcher {
	return &Watcher{
		path:     path,
		provider: file.Provider(path),
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins watching. Invalid reloads are logged and skipped.
func (w *Watcher) Start() error {
	if err := w.provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			logging.Warn(w.logger, "config watch error", "error", err)
			return
		}
		w.reload()
	}); err != nil {
		return fmt.Errorf("%w: watch %s: %v", ErrLoadConfig, w.path, err)
	}
	logging.Info(w.logger, "watching config file", slog.String("path", w.path))
	return nil
}

// Stop ends the watch.
func (w *Watcher) Stop() error {
	return w.provider.Unwatch()
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(context.Background(), w.path)
	if err != nil {
		logging.Warn(w.logger, "config reload rejected", "error", err)
		return
	}
	logging.Info(w.logger, "config reloaded", slog.String(logging.FieldDate, cfg.GameDate))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
