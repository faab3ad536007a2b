package symbols

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Entry is one listing in the symbol catalog.
type Entry struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Sector   string `json:"sector"`
}

// LoadCatalog reads symbol listings from a CSV file with columns
// Symbol,Name,Exchange,Sector. A header row is skipped if present.
func LoadCatalog(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(records) > 0 && records[0][0] == "Symbol" {
		records = records[1:]
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		if len(rec) < 4 {
			continue
		}
		entries = append(entries, Entry{
			Symbol:   rec[0],
			Name:     rec[1],
			Exchange: rec[2],
			Sector:   rec[3],
		})
	}
	return entries, nil
}
