// Package export writes query results to CSV files served by the
// download endpoint.
package export

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// utf8BOM makes spreadsheet tools detect UTF-8 for Chinese headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileName builds the export filename:
// admin_<admin>_session_<session>_<ts>_<rand>.csv. The admin prefix is
// what the download endpoint authorizes against.
func FileName(adminID int, sessionID string, now time.Time) string {
	return fmt.Sprintf("admin_%d_session_%s_%s_%04d.csv",
		adminID, sessionID, now.Format("20060102150405"), rand.Intn(10000))
}

// WriteRows writes rows to dir/name as UTF-8-with-BOM CSV. The header is
// the union of row keys in first-seen order; missing cells are empty.
func WriteRows(dir, name string, rows []map[string]any, keyOrder []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	header := unionKeys(rows, keyOrder)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return "", fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, key := range header {
			if v, ok := row[key]; ok && v != nil {
				record[i] = fmt.Sprintf("%v", v)
			}
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return path, nil
}

// unionKeys returns keyOrder first, then any additional keys found in
// the rows.
func unionKeys(rows []map[string]any, keyOrder []string) []string {
	seen := make(map[string]struct{})
	var header []string
	for _, key := range keyOrder {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		header = append(header, key)
	}
	for _, row := range rows {
		for key := range row {
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				header = append(header, key)
			}
		}
	}
	return header
}
