package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okafor-chidi/catalog-digitizer/internal/entity"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ledger.page-1.txt", "Accession No: 23.1.1")
	writeFile(t, dir, "ledger.page-2.txt", "Accession No: 23.1.2")
	writeFile(t, dir, "loose-card.txt", "Object Name: bowl")
	writeFile(t, dir, "scan.jpg", "not a transcription")
	writeFile(t, dir, ".hidden.txt", "skip me")

	u := NewIngestor(nil)
	pages, stats, err := u.IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3: %+v", len(pages), pages)
	}
	if stats.Loaded != 3 || stats.Matched != 3 {
		t.Errorf("stats = %+v", stats)
	}

	byKey := map[string]entity.RawPage{}
	for _, p := range pages {
		byKey[p.SourceFile] = p
	}
	if _, ok := byKey["ledger"]; !ok {
		t.Fatalf("no page with source \"ledger\": %+v", pages)
	}
	ledgerPages := map[int]bool{}
	for _, p := range pages {
		if p.SourceFile == "ledger" {
			ledgerPages[p.Page] = true
		}
	}
	if !ledgerPages[1] || !ledgerPages[2] {
		t.Errorf("ledger pages = %v, want pages 1 and 2", ledgerPages)
	}
	if got := byKey["loose-card"]; got.Page != 1 {
		t.Errorf("file without page suffix should default to page 1, got %d", got.Page)
	}
	if byKey["ledger"].RawText == "" {
		t.Errorf("raw text not loaded")
	}
}

func TestIngestDirectorySubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("box3", "card_p2.txt"), "Notes: verso blank")

	u := NewIngestor(nil)
	pages, _, err := u.IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if pages[0].SourceFile != filepath.Join("box3", "card") {
		t.Errorf("source = %q, want relative path with suffix stripped", pages[0].SourceFile)
	}
	if pages[0].Page != 2 {
		t.Errorf("page = %d, want 2", pages[0].Page)
	}
}

func TestSplitPageSuffix(t *testing.T) {
	tests := []struct {
		in       string
		wantSrc  string
		wantPage int
	}{
		{"ledger.page-4", "ledger", 4},
		{"ledger_p07", "ledger", 7},
		{"ledger-pg2", "ledger", 2},
		{"ledger", "ledger", 1},
		{"report-2023", "report-2023", 1}, // bare trailing number is not a page suffix
		{"ledger.page-0", "ledger.page-0", 1},
	}
	for _, tt := range tests {
		src, page := splitPageSuffix(tt.in)
		if src != tt.wantSrc || page != tt.wantPage {
			t.Errorf("splitPageSuffix(%q) = (%q, %d), want (%q, %d)",
				tt.in, src, page, tt.wantSrc, tt.wantPage)
		}
	}
}

func TestIngestDirectoryMissingRoot(t *testing.T) {
	u := NewIngestor(nil)
	if _, _, err := u.IngestDirectory(context.Background(), "", true); err == nil {
		t.Fatal("empty root accepted")
	}
}
