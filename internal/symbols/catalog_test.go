package symbols

import (
	"os"
	"testing"
)

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "symbols_*.csv")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

func TestLoadCatalog(t *testing.T) {
	path := writeTempCatalog(t, `Symbol,Name,Exchange,Sector
AAPL,Apple Inc.,NASDAQ,Technology
TSLA,Tesla Inc.,NASDAQ,Automotive`)

	entries, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Symbol != "AAPL" || entries[0].Name != "Apple Inc." {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Sector != "Automotive" {
		t.Errorf("expected sector Automotive, got %s", entries[1].Sector)
	}
}

func TestLoadCatalog_NoHeader(t *testing.T) {
	path := writeTempCatalog(t, `MSFT,Microsoft Corporation,NASDAQ,Technology`)

	entries, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Symbol != "MSFT" {
		t.Errorf("expected single MSFT entry, got %+v", entries)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog("does-not-exist.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
