package v1

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExportDownloadStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	s := newExportDownloadStore()
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	token := s.put(path, "inventory-turnover-report.pdf", time.Minute)
	if token == "" {
		t.Fatalf("empty token")
	}

	item, ok := s.get(token)
	if !ok {
		t.Fatalf("token not found")
	}
	if item.filePath != path || item.fileName != "inventory-turnover-report.pdf" {
		t.Fatalf("unexpected item: %+v", item)
	}

	s.delete(token)
	if _, ok := s.get(token); ok {
		t.Fatalf("token must be gone after delete")
	}
}

func TestExportDownloadStore_ExpiryRemovesFile(t *testing.T) {
	t.Parallel()

	s := newExportDownloadStore()
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	token := s.put(path, "inventory-turnover-report.pdf", -time.Second)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token must not resolve")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expired artifact must be removed, stat err=%v", err)
	}
}
