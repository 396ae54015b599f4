package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWatcher_PublishesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "auto_reload: true\n")

	w, err := New(Config{Path: path, DebounceDur: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	writeFile(t, path, "auto_reload: false\n")

	select {
	case event := <-ch:
		assert.Equal(t, path, event.Payload.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "x\n")

	w, err := New(Config{Path: path, DebounceDur: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	writeFile(t, filepath.Join(dir, "other.yaml"), "y\n")

	select {
	case event := <-ch:
		t.Fatalf("unexpected event for unrelated file: %+v", event.Payload)
	case <-time.After(200 * time.Millisecond):
		// No event - correct.
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "0\n")

	w, err := New(Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	for i := range 5 {
		writeFile(t, path, string(rune('0'+i))+"\n")
		time.Sleep(5 * time.Millisecond)
	}

	// The burst collapses into one event.
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced event")
	}

	select {
	case event := <-ch:
		t.Fatalf("expected a single debounced event, got another: %+v", event.Payload)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StopClosesBroker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "x\n")

	w, err := New(Config{Path: path, DebounceDur: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Broker().Subscribe(ctx)

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "subscription should close on Stop")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
