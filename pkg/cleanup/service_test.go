package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestRunOnce_SweepsOldExports(t *testing.T) {
	exportDir := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)

	touch(t, filepath.Join(exportDir, "admin_1_session_a_old.csv"), old)
	touch(t, filepath.Join(exportDir, "admin_1_session_b_fresh.csv"), time.Now())
	touch(t, filepath.Join(exportDir, "notes.txt"), old)

	svc := NewService(exportDir, t.TempDir(), 24*time.Hour, time.Hour)
	svc.RunOnce()

	_, err := os.Stat(filepath.Join(exportDir, "admin_1_session_a_old.csv"))
	assert.True(t, os.IsNotExist(err), "old export should be removed")

	_, err = os.Stat(filepath.Join(exportDir, "admin_1_session_b_fresh.csv"))
	assert.NoError(t, err, "fresh export should survive")

	// Non-CSV files are never touched.
	_, err = os.Stat(filepath.Join(exportDir, "notes.txt"))
	assert.NoError(t, err)
}

func TestRunOnce_SweepsStaleSessionLogDirs(t *testing.T) {
	ioLogDir := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)

	// Entirely stale session: removed.
	touch(t, filepath.Join(ioLogDir, "sess-old", "intent_recognition", "a.json"), old)

	// Session with one recent artifact: kept whole.
	touch(t, filepath.Join(ioLogDir, "sess-active", "intent_recognition", "a.json"), old)
	touch(t, filepath.Join(ioLogDir, "sess-active", "sql_validate", "b.json"), time.Now())

	svc := NewService(t.TempDir(), ioLogDir, 24*time.Hour, time.Hour)
	svc.RunOnce()

	_, err := os.Stat(filepath.Join(ioLogDir, "sess-old"))
	assert.True(t, os.IsNotExist(err), "stale session dir should be removed")

	_, err = os.Stat(filepath.Join(ioLogDir, "sess-active", "intent_recognition", "a.json"))
	assert.NoError(t, err, "active session dir should survive intact")
}

func TestRunOnce_MissingDirectoriesAreFine(t *testing.T) {
	svc := NewService(
		filepath.Join(t.TempDir(), "missing-exports"),
		filepath.Join(t.TempDir(), "missing-iologs"),
		24*time.Hour, time.Hour)

	// Must not panic or create anything.
	svc.RunOnce()
}

func TestStartStop(t *testing.T) {
	svc := NewService(t.TempDir(), t.TempDir(), time.Hour, time.Hour)

	svc.Start(context.Background())
	svc.Stop()

	// Stop on a never-started service is a no-op.
	NewService(t.TempDir(), t.TempDir(), time.Hour, time.Hour).Stop()
}
