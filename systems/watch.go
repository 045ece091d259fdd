package systems

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/tilechase/shared/leveldata"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// ObstacleWatcher reloads an obstacle file whenever it changes on disk and
// publishes the result through an ObstacleHolder. A file that fails to parse
// is logged and the previous map stays live.
type ObstacleWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	holder   *navgrid.ObstacleHolder
	debounce time.Duration
	log      *zap.Logger
}

// WatchObstacles watches the directory holding path, so editors that save by
// renaming a temporary file are picked up too.
func WatchObstacles(path string, holder *navgrid.ObstacleHolder, log *zap.Logger) (*ObstacleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &ObstacleWatcher{
		watcher:  w,
		path:     abs,
		holder:   holder,
		debounce: reloadDebounce,
		log:      log,
	}, nil
}

// Run handles file events until ctx is done or the watcher is closed.
func (w *ObstacleWatcher) Run(ctx context.Context) {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending = time.After(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("obstacle watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			if err := w.Reload(); err != nil {
				w.log.Error("obstacle reload failed", zap.String("path", w.path), zap.Error(err))
			}
		}
	}
}

// Reload reads the file once and publishes it.
func (w *ObstacleWatcher) Reload() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}
	m, err := leveldata.ParseObstacles(data)
	if err != nil {
		return err
	}
	w.holder.Store(m)
	w.log.Info("obstacles reloaded", zap.String("path", w.path), zap.Int("blocked", len(m.Cells())))
	return nil
}

func (w *ObstacleWatcher) Close() error {
	return w.watcher.Close()
}
