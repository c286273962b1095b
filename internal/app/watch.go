package app

import (
	"context"
	"errors"

	"github.com/corey/wordfreq/internal/domain/words"
)

// Watch calls run once, then again every time the file at path changes,
// until ctx is done. Runs happen one at a time on the calling goroutine.
//
// An error from the first run is returned as is. Later runs tolerate the
// file being briefly absent (ErrNotFound) while an editor replaces it; any
// other error stops the watch.
func (a *App) Watch(ctx context.Context, path string, run func() error) error {
	if err := run(); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	changed := make(chan struct{}, 1)
	err = w.Watch(path, func(string) {
		select {
		case changed <- struct{}{}:
		default: // a re-run is already queued
		}
	})
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			if err := run(); err != nil && !errors.Is(err, words.ErrNotFound) {
				return err
			}
		}
	}
}
