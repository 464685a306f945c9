package watcher

import (
	"context"
	"os"
	"time"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is how long changes must settle before the cache is refreshed.
const DefaultDebounceWindow = 50 * time.Millisecond

// RefreshOnChange watches root and empties the proxy cache once a burst of
// changes settles. It returns when ctx is canceled or the watcher stops.
func RefreshOnChange(
	ctx context.Context,
	w ports.Watcher,
	root string,
	refresher ports.CacheRefresher,
	logger ports.Logger,
	window time.Duration,
) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return zerr.With(domain.ErrWatcherFailed, "root", root)
	}
	if err := w.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "root", root)
	}
	defer func() { _ = w.Stop() }()

	logger.Info("watching frontend sources", "root", root)

	d := NewDebouncer(window, func(paths []string) {
		dropped := refresher.Refresh()
		logger.Info("proxy cache refreshed", "changed", len(paths), "dropped", dropped)
	})

	for event := range w.Events() {
		d.Add(event.Path)
	}
	return nil
}
