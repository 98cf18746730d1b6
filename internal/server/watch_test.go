package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	t.Run("requires at least one path", func(t *testing.T) {
		_, err := NewWatcher(nil, func(_ context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrNoWatchTargets)
	})

	t.Run("classifies files and directories", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, ".paperview")
		require.NoError(t, os.WriteFile(target, []byte("theme: {}\n"), 0600))

		w, err := NewWatcher([]string{target, dir}, func(_ context.Context) error { return nil })
		require.NoError(t, err)
		defer w.Close() //nolint:errcheck

		_, isFile := w.files[filepath.Clean(target)]
		assert.True(t, isFile, "expected config file to be a file target")

		_, isDir := w.dirs[filepath.Clean(dir)]
		assert.True(t, isDir, "expected directory to be a directory target")
	})

	t.Run("accepts targets that do not exist yet", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "theme.yaml")

		w, err := NewWatcher([]string{target}, func(_ context.Context) error { return nil })
		require.NoError(t, err)
		defer w.Close() //nolint:errcheck

		_, isFile := w.files[filepath.Clean(target)]
		assert.True(t, isFile)
	})
}

func TestWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".paperview")
	require.NoError(t, os.WriteFile(target, []byte("theme: {}\n"), 0600))

	contentDir := filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(contentDir, 0750))

	w, err := NewWatcher([]string{target, contentDir}, func(_ context.Context) error { return nil })
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "write to watched file",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "rename of watched file",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Rename},
			expected: true,
		},
		{
			name:     "chmod only is ignored",
			event:    fsnotify.Event{Name: target, Op: fsnotify.Chmod},
			expected: false,
		},
		{
			name:     "sibling file in the same directory is ignored",
			event:    fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "file below watched directory",
			event:    fsnotify.Event{Name: filepath.Join(contentDir, "intro.md"), Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "watched directory itself",
			event:    fsnotify.Event{Name: contentDir, Op: fsnotify.Remove},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.relevant(tt.event))
		})
	}
}

func TestWatcherLoop(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".paperview")
	require.NoError(t, os.WriteFile(target, []byte("theme: {}\n"), 0600))

	rebuilt := make(chan struct{}, 8)
	w, err := NewWatcher([]string{target},
		func(_ context.Context) error {
			rebuilt <- struct{}{}
			return nil
		},
		WithWatchDebounce(20*time.Millisecond),
	)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	events := make(chan fsnotify.Event)
	errs := make(chan error)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	// A burst of rapid saves collapses into one rebuild.
	for i := 0; i < 3; i++ {
		events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	}

	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a rebuild after the debounce window")
	}

	select {
	case <-rebuilt:
		t.Fatal("expected a single rebuild for the burst")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherLoopKeepsRunningAfterRebuildFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".paperview")
	require.NoError(t, os.WriteFile(target, []byte("theme: {}\n"), 0600))

	calls := make(chan int, 8)
	count := 0
	w, err := NewWatcher([]string{target},
		func(_ context.Context) error {
			count++
			calls <- count
			if count == 1 {
				return errors.New("broken theme")
			}
			return nil
		},
		WithWatchDebounce(10*time.Millisecond),
	)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	events := make(chan fsnotify.Event)
	errs := make(chan error)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	select {
	case n := <-calls:
		require.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the first rebuild")
	}

	// The loop survives the failure and rebuilds on the next change.
	events <- fsnotify.Event{Name: target, Op: fsnotify.Write}
	select {
	case n := <-calls:
		require.Equal(t, 2, n)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a second rebuild after the failure")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherLoopStopsWhenEventsClose(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".paperview")
	require.NoError(t, os.WriteFile(target, []byte("theme: {}\n"), 0600))

	w, err := NewWatcher([]string{target}, func(_ context.Context) error { return nil })
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	events := make(chan fsnotify.Event)
	errs := make(chan error)

	done := make(chan error, 1)
	go func() { done <- w.loop(context.Background(), events, errs) }()

	close(events)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the loop to stop when the event channel closed")
	}
}
