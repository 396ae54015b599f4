package log

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessuselesss/agents/internal/pubsub"
)

// initTestLogger points the global logger at a temp file and restores the
// previous logger when the test finishes.
func initTestLogger(t *testing.T) string {
	t.Helper()

	prev := defaultLogger
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := InitWithTeaLog(path, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		cleanup()
		defaultLogger = prev
	})
	return path
}

func TestInitWithTeaLog_WritesStructuredEntries(t *testing.T) {
	path := initTestLogger(t)

	Info(CatSim, "run started", "pattern", "sequential")

	data, err := os.ReadFile(path) //nolint:gosec // G304: temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [sim] run started pattern=sequential")
}

func TestRecent_ReturnsNewestEntriesOldestFirst(t *testing.T) {
	initTestLogger(t)

	Debug(CatUI, "first")
	Info(CatUI, "second")
	Warn(CatUI, "third")

	entries := Recent(2)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "second")
	assert.Contains(t, entries[1], "third")
}

func TestRecent_NilWithoutLogger(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	t.Cleanup(func() { defaultLogger = prev })

	assert.Nil(t, Recent(10))
}

func TestClearBuffer_DropsBufferedEntries(t *testing.T) {
	initTestLogger(t)

	Info(CatConfig, "loaded")
	require.NotEmpty(t, Recent(10))

	ClearBuffer()
	assert.Empty(t, Recent(10))
}

func TestSetMinLevel_FiltersLowerLevels(t *testing.T) {
	initTestLogger(t)

	SetMinLevel(LevelWarn)
	t.Cleanup(func() { SetMinLevel(LevelDebug) })

	Debug(CatSim, "too quiet")
	Warn(CatSim, "loud enough")

	entries := Recent(10)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "loud enough")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"Warn":  LevelWarn,
		"error": LevelError,
	} {
		level, ok := ParseLevel(name)
		require.True(t, ok, "level %s", name)
		assert.Equal(t, want, level)
	}

	_, ok := ParseLevel("verbose")
	assert.False(t, ok)
}

func TestNewListener_ReceivesPublishedEntries(t *testing.T) {
	initTestLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	ErrorErr(CatWatcher, "watch failed", os.ErrNotExist)

	done := make(chan tea.Msg, 1)
	go func() { done <- listener.Listen()() }()

	select {
	case msg := <-done:
		event, ok := msg.(pubsub.Event[string])
		require.True(t, ok)
		assert.True(t, strings.Contains(event.Payload, "watch failed"))
		assert.True(t, strings.Contains(event.Payload, "error=file does not exist"))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for log event")
	}
}
