package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) (string, bool) {
	t.Helper()
	select {
	case path := <-w.Events:
		return path, true
	case <-time.After(2 * time.Second):
		return "", false
	}
}

func TestWatcherReportsWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "lighting.vert")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(vert, []byte("#version 410\n"), 0o644))

	w, err := NewWatcher(vert)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(vert, []byte("#version 410 core\n"), 0o644))

	path, ok := waitEvent(t, w)
	require.True(t, ok, "no event for %s", vert)
	assert.Equal(t, vert, path)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "lighting.frag"))
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lighting.frag")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}

func assertNoEvent(t *testing.T, w *Watcher, wait time.Duration) {
	t.Helper()
	select {
	case path := <-w.Events:
		t.Errorf("unexpected event for %s", path)
	case <-time.After(wait):
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	frag := filepath.Join(t.TempDir(), "lighting.frag")
	require.NoError(t, os.WriteFile(frag, nil, 0o644))

	w, err := NewWatcher(frag)
	require.NoError(t, err)
	defer w.Close()

	var lastWrite time.Time
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(frag, []byte(fmt.Sprintf("// save %d\n", i)), 0o644))
		lastWrite = time.Now()
		time.Sleep(20 * time.Millisecond)
	}

	path, ok := waitEvent(t, w)
	require.True(t, ok, "no event for %s", frag)
	assert.Equal(t, frag, path)
	assert.GreaterOrEqual(t, time.Since(lastWrite), debounce)

	assertNoEvent(t, w, 3*debounce)
}

func TestWatcherReportsFinishedReplace(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "lighting.frag")
	require.NoError(t, os.WriteFile(frag, []byte("old"), 0o644))

	w, err := NewWatcher(frag)
	require.NoError(t, err)
	defer w.Close()

	// Editors save by moving the old file aside and writing a new one
	require.NoError(t, os.Rename(frag, filepath.Join(dir, "lighting.frag~")))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(frag, []byte("new"), 0o644))

	path, ok := waitEvent(t, w)
	require.True(t, ok, "no event for %s", frag)
	assert.Equal(t, frag, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	assertNoEvent(t, w, 3*debounce)
}

func TestCloseWithPendingEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lighting.vert")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("#version 410\n"), 0o644))
	time.Sleep(debounce / 4)
	assert.NoError(t, w.Close())

	// A timer firing after Close must not send on the closed channel
	time.Sleep(2 * debounce)
	_, open := <-w.Events
	assert.False(t, open)
}
