// Package watcher hot-reloads the demo configuration when its file changes
// on disk.
package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andrewthehan/hovertip/internal/config"
)

const pollInterval = 2 * time.Second

// Callbacks receive reload results. OnReload gets the freshly loaded,
// normalized config.
type Callbacks struct {
	OnReload func(cfg config.AppConfig)
	OnError  func(err error)
}

// ConfigWatcher monitors a single config file via fsnotify with a periodic
// poll fallback for filesystems that drop events.
type ConfigWatcher struct {
	path      string
	cleanPath string
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	done      chan struct{}
	stopOnce  sync.Once

	mu      sync.Mutex
	modTime time.Time

	onReload func(cfg config.AppConfig)
	onError  func(err error)
}

func New(path string, logger *slog.Logger, cbs Callbacks) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &ConfigWatcher{
		path:      path,
		cleanPath: filepath.Clean(path),
		watcher:   w,
		logger:    logger,
		done:      make(chan struct{}),
		onReload:  cbs.OnReload,
		onError:   cbs.OnError,
	}, nil
}

// Start begins watching. The config directory is watched rather than the
// file itself so atomic replace-by-rename saves are observed.
func (cw *ConfigWatcher) Start() error {
	dir := filepath.Dir(cw.path)
	if err := cw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	if info, err := os.Stat(cw.cleanPath); err == nil {
		cw.mu.Lock()
		cw.modTime = info.ModTime()
		cw.mu.Unlock()
	}

	cw.logger.Info("config watcher started", "path", cw.path)
	go cw.watchLoop()

	return nil
}

func (cw *ConfigWatcher) Stop() {
	cw.stopOnce.Do(func() {
		cw.logger.Info("config watcher stopped", "path", cw.path)
		close(cw.done)
		_ = cw.watcher.Close()
	})
}

func (cw *ConfigWatcher) watchLoop() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cw.done:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Clean(event.Name) != cw.cleanPath {
				continue
			}
			cw.reloadIfChanged()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.fail(err)
		case <-ticker.C:
			cw.reloadIfChanged()
		}
	}
}

// reloadIfChanged reloads the file only when its mod time moved, so the
// poll fallback does not spam reloads.
func (cw *ConfigWatcher) reloadIfChanged() {
	info, err := os.Stat(cw.cleanPath)
	if err != nil {
		// Missing file between save and rename; the next event retries.
		return
	}

	cw.mu.Lock()
	changed := info.ModTime().After(cw.modTime)
	if changed {
		cw.modTime = info.ModTime()
	}
	cw.mu.Unlock()
	if !changed {
		return
	}

	cfg, err := config.Load(cw.path)
	if err != nil {
		cw.fail(err)
		return
	}

	cw.logger.Debug("config reloaded", "path", cw.path)
	if cw.onReload != nil {
		cw.onReload(cfg)
	}
}

func (cw *ConfigWatcher) fail(err error) {
	cw.logger.Warn("config watcher error", "error", err)
	if cw.onError != nil {
		cw.onError(err)
	}
}
