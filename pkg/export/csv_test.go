package export

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := time.Date(2026, 3, 1, 14, 30, 5, 0, time.UTC)
	name := FileName(7, "abc-123", now)

	assert.Regexp(t, regexp.MustCompile(`^admin_7_session_abc-123_20260301143005_\d{4}\.csv$`), name)
}

func TestWriteRows(t *testing.T) {
	dir := t.TempDir()
	rows := []map[string]any{
		{"student_no": "2022001", "real_name": "张三", "score_value": 91.5},
		{"student_no": "2022002", "real_name": "李四", "score_value": nil},
	}

	path, err := WriteRows(dir, "out.csv", rows, []string{"student_no", "real_name", "score_value"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM lets spreadsheet tools detect the encoding.
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimSpace(string(raw[3:])), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "student_no,real_name,score_value", lines[0])
	assert.Equal(t, "2022001,张三,91.5", lines[1])
	assert.Equal(t, "2022002,李四,", lines[2])
}

func TestWriteRows_HeaderUnionsExtraKeys(t *testing.T) {
	rows := []map[string]any{
		{"a": 1},
		{"a": 2, "extra": "x"},
	}

	path, err := WriteRows(t.TempDir(), "out.csv", rows, []string{"a"})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,extra", strings.Split(strings.TrimSpace(string(raw[3:])), "\n")[0])
}

func TestWriteRows_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := WriteRows(dir, "out.csv", nil, []string{"a"})
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
