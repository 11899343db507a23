package shaders

import (
	"fmt"
	"log/slog"

	"github.com/jhenstridge/go-inotify"
)

// Watcher signals when any watched shader file has been rewritten. Signals
// coalesce: a reload pending in the channel absorbs further writes.
type Watcher struct {
	watcher *inotify.Watcher
	reload  chan string
	logger  *slog.Logger
}

func Watch(logger *slog.Logger, paths ...string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not start inotify watcher: %w", err)
	}

	for _, path := range paths {
		_, err = watcher.Watch(path)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("could not watch %s: %w", path, err)
		}
	}

	w := &Watcher{
		watcher: watcher,
		reload:  make(chan string, 1),
		logger:  logger,
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for ev := range w.watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		w.logger.Debug("shader changed on disk", slog.String("path", ev.Name))
		select {
		case w.reload <- ev.Name:
		default:
		}
	}
}

// Reloads yields the path of a rewritten shader file.
func (w *Watcher) Reloads() <-chan string {
	return w.reload
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
