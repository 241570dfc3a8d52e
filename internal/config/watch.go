package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes and sends each valid result on
// out. Invalid files are logged and skipped, so the receiver keeps its last
// good snapshot. The watcher stops when ctx is done.
func Watch(ctx context.Context, path string, out chan<- *File) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return err
	}
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				f, err := Load(path)
				if err != nil {
					slog.Error("config reload rejected", "path", path, "err", err)
					continue
				}
				slog.Info("config reloaded", "path", path)
				select {
				case out <- f:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher", "err", err)
			}
		}
	}()
	return nil
}
