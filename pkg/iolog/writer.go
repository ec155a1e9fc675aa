// Package iolog drops one local JSON artifact per node invocation so a
// failed request can be replayed offline. Writes are best-effort: a
// filesystem problem must never fail the workflow.
package iolog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Statuses recorded in the artifact filename.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Entry is the serialized artifact body.
type Entry struct {
	Step      string `json:"step"`
	Status    string `json:"status"`
	Input     any    `json:"input"`
	Output    any    `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Writer persists node I/O artifacts under
// <root>/<session_id>/<step>/<ts>-<status>.json.
type Writer struct {
	root string
	now  func() time.Time
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir, now: time.Now}
}

// Write records one node invocation. Errors are logged and swallowed.
func (w *Writer) Write(sessionID, step string, input, output any, status, errMsg string) {
	if w == nil || w.root == "" {
		return
	}
	dir := filepath.Join(w.root, sessionID, step)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("Failed to create node IO log directory", "dir", dir, "error", err)
		return
	}

	ts := w.now().UTC()
	name := fmt.Sprintf("%s-%06d-%s.json",
		ts.Format("20060102-15-04-05"), ts.Nanosecond()/1000, status)

	entry := Entry{
		Step:      step,
		Status:    status,
		Input:     input,
		Output:    output,
		Error:     errMsg,
		Timestamp: ts.Format(time.RFC3339Nano),
	}
	raw, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		slog.Warn("Failed to marshal node IO log entry", "step", step, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		slog.Warn("Failed to write node IO log", "path", filepath.Join(dir, name), "error", err)
	}
}
