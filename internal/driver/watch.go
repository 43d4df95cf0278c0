package driver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after a change before regenerating.
const DefaultDebounce = 200 * time.Millisecond

// schemaExtensions are the files whose changes trigger a run.
var schemaExtensions = map[string]bool{".json": true, ".yaml": true, ".yml": true}

// Watch runs once and then again after every change to a schema below the
// base directory or to a mapping file, until ctx is done. Every outcome is
// passed to report. Changes to the output directory are ignored.
func Watch(ctx context.Context, opts Options, debounce time.Duration, report func(*Result, error)) error {
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	output := ""
	if opts.Sink == nil {
		output, err = filepath.Abs(opts.OutputDirectory)
		if err != nil {
			return err
		}
	}

	err = watchTree(watcher, opts.BaseDirectory, output)
	if err != nil {
		return err
	}

	mappings := make(map[string]bool, len(opts.Mappings))

	for _, path := range opts.Mappings {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		mappings[abs] = true

		err = watcher.Add(filepath.Dir(abs))
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	report(Run(ctx, opts))

	timer := time.NewTimer(debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if isWithin(ev.Name, output) {
				continue
			}

			if ev.Has(fsnotify.Create) {
				// New directories below the base directory are watched too.
				_ = watchTree(watcher, ev.Name, output)
			}

			if !mappings[ev.Name] && !schemaExtensions[strings.ToLower(filepath.Ext(ev.Name))] {
				continue
			}

			logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", "error", err)
		case <-timer.C:
			logger.Info("regenerating")
			report(Run(ctx, opts))
		}
	}
}

// watchTree adds root and every directory below it, except skip.
func watchTree(watcher *fsnotify.Watcher, root, skip string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if isWithin(path, skip) {
			return filepath.SkipDir
		}

		err = watcher.Add(path)
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}

		return nil
	})
}

// isWithin reports whether path is dir or below it. An empty dir contains
// nothing.
func isWithin(path, dir string) bool {
	if dir == "" {
		return false
	}

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
