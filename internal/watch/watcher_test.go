package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = 'a'"), 0o644))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("title = 'b'"), 0o644))

	select {
	case <-w.Changed():
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	w, err := New(path, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	select {
	case <-w.Changed():
		t.Fatal("unrelated file reported")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStartFailsForMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "site.toml"), 0)
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))
}
