// Package cleanup enforces file retention for CSV exports and node I/O
// log directories.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Service periodically deletes:
//   - export CSVs older than the retention window
//   - per-session node I/O log directories whose newest artifact is
//     older than the retention window
//
// All operations are idempotent; a missing directory is not an error.
type Service struct {
	exportDir string
	ioLogDir  string
	retention time.Duration
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(exportDir, ioLogDir string, retention, interval time.Duration) *Service {
	return &Service{
		exportDir: exportDir,
		ioLogDir:  ioLogDir,
		retention: retention,
		interval:  interval,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"export_dir", s.exportDir,
		"iolog_dir", s.ioLogDir,
		"retention", s.retention,
		"interval", s.interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce performs one retention sweep. Exported for tests and for the
// startup pass.
func (s *Service) RunOnce() {
	cutoff := time.Now().Add(-s.retention)
	s.sweepExports(cutoff)
	s.sweepIOLogs(cutoff)
}

func (s *Service) sweepExports(cutoff time.Time) {
	entries, err := os.ReadDir(s.exportDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Retention: reading export dir failed", "dir", s.exportDir, "error", err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.exportDir, entry.Name())); err != nil {
			slog.Warn("Retention: removing export failed", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Retention: removed old exports", "count", removed)
	}
}

func (s *Service) sweepIOLogs(cutoff time.Time) {
	sessions, err := os.ReadDir(s.ioLogDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Retention: reading iolog dir failed", "dir", s.ioLogDir, "error", err)
		}
		return
	}

	removed := 0
	for _, session := range sessions {
		if !session.IsDir() {
			continue
		}
		dir := filepath.Join(s.ioLogDir, session.Name())
		if newestArtifact(dir).After(cutoff) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			slog.Warn("Retention: removing session logs failed", "dir", dir, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Retention: removed old session log dirs", "count", removed)
	}
}

// newestArtifact returns the most recent mod time under dir, walking the
// per-step subdirectories. The zero time means the dir is empty.
func newestArtifact(dir string) time.Time {
	var newest time.Time
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil && info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return newest
}
