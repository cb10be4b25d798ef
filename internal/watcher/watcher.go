// Package watcher observes a directory for text files and normalizes
// each created or modified file, writing the spoken form next to the
// input with a ".spoken.txt" suffix.
package watcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
	"github.com/vocalise-labs/vocalise-cli/internal/logger"
)

// outputSuffix marks files the watcher produced, so it never
// re-processes its own output.
const outputSuffix = ".spoken.txt"

// Watcher normalizes text files as they appear in a directory.
type Watcher struct {
	batch driving.BatchService
	exts  map[string]bool
}

// Option configures the watcher.
type Option func(*Watcher)

// WithExtensions sets the file extensions to process (defaults to ".txt").
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		w.exts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			w.exts[strings.ToLower(ext)] = true
		}
	}
}

// New creates a new directory watcher.
func New(batch driving.BatchService, opts ...Option) *Watcher {
	w := &Watcher{
		batch: batch,
		exts:  map[string]bool{".txt": true},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch processes matching files in dir until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watching %s: not a directory", dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("Watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			if err := w.process(ctx, event.Name); err != nil {
				logger.Warn("Processing %s: %v", event.Name, err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// wants reports whether a path is an input file the watcher should
// process.
func (w *Watcher) wants(path string) bool {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, outputSuffix) {
		return false
	}
	for ext := range w.exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// process normalizes one file and writes the result alongside it.
func (w *Watcher) process(ctx context.Context, path string) error {
	doc, err := w.batch.ProcessFile(ctx, path)
	if err != nil {
		return err
	}

	out := OutputPath(path)
	if err := os.WriteFile(out, []byte(doc.Output), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logger.Info("Wrote %s", out)
	return nil
}

// OutputPath returns the path the watcher writes the spoken form to.
func OutputPath(path string) string {
	ext := ""
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, string(os.PathSeparator)) {
		ext = path[i:]
	}
	return strings.TrimSuffix(path, ext) + outputSuffix
}
