package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/confgen/errors"
)

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(input, []byte("[root]\n"), 0644))

	var calls atomic.Int32
	w, err := NewWatcher([]string{input}, 100*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(input, []byte("[root]\nx = 1\n"), 0644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(input, []byte("[root]\n"), 0644))

	var calls atomic.Int32
	w, err := NewWatcher([]string{input}, 20*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.Newk(errors.ErrTypeMismatch, "rejected")
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.cpp"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// An error from the callback does not stop the watcher.
	require.NoError(t, os.WriteFile(input, []byte("[root]\ny = 2\n"), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	require.NoError(t, os.WriteFile(input, []byte("[root]\ny = 3\n"), 0644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher([]string{"/nonexistent/dir/config.ini"}, time.Millisecond, func(context.Context) error { return nil })
	require.Error(t, err)
}
