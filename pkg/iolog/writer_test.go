package iolog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	w.Write("sess-1", "sql_generation",
		map[string]any{"query": "统计人数"},
		map[string]any{"sql": "WITH t AS (SELECT 1) SELECT * FROM t"},
		StatusSuccess, "")

	stepDir := filepath.Join(dir, "sess-1", "sql_generation")
	entries, err := os.ReadDir(stepDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-success.json"))

	raw, err := os.ReadFile(filepath.Join(stepDir, entries[0].Name()))
	require.NoError(t, err)

	var entry Entry
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "sql_generation", entry.Step)
	assert.Equal(t, StatusSuccess, entry.Status)
	assert.Empty(t, entry.Error)
	assert.NotEmpty(t, entry.Timestamp)
}

func TestWriter_FailedStatusInFilename(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	w.Write("sess-1", "intent_recognition", nil, nil, StatusFailed, "intent_invalid: boom")

	entries, err := os.ReadDir(filepath.Join(dir, "sess-1", "intent_recognition"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-failed.json"))
}

func TestWriter_EmptyRootIsNoOp(t *testing.T) {
	w := NewWriter("")
	// Must not panic or create anything.
	w.Write("sess-1", "intent_recognition", nil, nil, StatusSuccess, "")

	var nilWriter *Writer
	nilWriter.Write("sess-1", "intent_recognition", nil, nil, StatusSuccess, "")
}
