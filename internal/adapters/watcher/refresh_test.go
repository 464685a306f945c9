package watcher_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"path/filepath"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/internal/adapters/logger"
	"go.trai.ch/frame/internal/adapters/watcher"
	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/frame/internal/core/ports"
	"go.trai.ch/frame/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func events(paths ...string) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, p := range paths {
			if !yield(ports.WatchEvent{Path: p, Operation: ports.OpWrite}) {
				return
			}
		}
	}
}

func bufferLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)
	return l, &buf
}

func TestRefreshOnChange_RefreshesOncePerBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		root := t.TempDir()

		w := mocks.NewMockWatcher(ctrl)
		w.EXPECT().Start(gomock.Any(), root).Return(nil)
		w.EXPECT().Events().Return(events(
			filepath.Join(root, "App.svelte"),
			filepath.Join(root, "main.ts"),
			filepath.Join(root, "App.svelte"),
		))
		w.EXPECT().Stop().Return(nil)

		refresher := mocks.NewMockCacheRefresher(ctrl)
		refresher.EXPECT().Refresh().Return(3).Times(1)

		log, buf := bufferLogger()
		err := watcher.RefreshOnChange(t.Context(), w, root, refresher, log, watcher.DefaultDebounceWindow)
		require.NoError(t, err)

		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		assert.Contains(t, buf.String(), `"msg":"proxy cache refreshed"`)
		assert.Contains(t, buf.String(), `"changed":2`)
		assert.Contains(t, buf.String(), `"dropped":3`)
	})
}

func TestRefreshOnChange_MissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	refresher := mocks.NewMockCacheRefresher(ctrl)
	log, _ := bufferLogger()

	root := filepath.Join(t.TempDir(), "missing")
	err := watcher.RefreshOnChange(t.Context(), w, root, refresher, log, watcher.DefaultDebounceWindow)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatcherFailed.Error())
}

func TestRefreshOnChange_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Start(gomock.Any(), root).Return(errors.New("too many open files"))
	refresher := mocks.NewMockCacheRefresher(ctrl)
	log, _ := bufferLogger()

	err := watcher.RefreshOnChange(context.Background(), w, root, refresher, log, watcher.DefaultDebounceWindow)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatcherFailed.Error())
	assert.ErrorContains(t, err, "too many open files")
}
