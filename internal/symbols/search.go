package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// Index provides full-text symbol lookup over an in-memory bleve index.
type Index struct {
	index   bleve.Index
	entries map[string]Entry
}

// NewIndex builds an in-memory search index over the catalog entries.
func NewIndex(entries []Entry) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	byID := make(map[string]Entry, len(entries))
	batch := idx.NewBatch()
	for _, e := range entries {
		if err := batch.Index(e.Symbol, e); err != nil {
			return nil, fmt.Errorf("index %s: %w", e.Symbol, err)
		}
		byID[e.Symbol] = e
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("index batch: %w", err)
	}

	return &Index{index: idx, entries: byID}, nil
}

// Search ranks catalog entries against the query. Exact symbol matches
// score above symbol prefixes, which score above company-name words.
func (ix *Index) Search(query string, limit int) ([]Entry, error) {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return nil, nil
	}

	exact := bleve.NewTermQuery(lowered)
	exact.SetField("symbol")
	exact.SetBoost(10.0)

	prefix := bleve.NewPrefixQuery(lowered)
	prefix.SetField("symbol")
	prefix.SetBoost(5.0)

	name := bleve.NewMatchQuery(query)
	name.SetField("name")
	name.SetBoost(3.0)

	wildcard := bleve.NewWildcardQuery("*" + lowered + "*")
	wildcard.SetField("symbol")
	wildcard.SetBoost(2.0)

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(exact, prefix, name, wildcard))
	req.Size = limit

	res, err := ix.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	out := make([]Entry, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if e, ok := ix.entries[hit.ID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Lookup returns the catalog entry for an exact symbol, if present.
func (ix *Index) Lookup(symbol string) (Entry, bool) {
	e, ok := ix.entries[strings.ToUpper(symbol)]
	return e, ok
}

// Symbols returns every indexed symbol in sorted order.
func (ix *Index) Symbols() []string {
	out := make([]string, 0, len(ix.entries))
	for sym := range ix.entries {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Close releases the underlying index.
func (ix *Index) Close() error {
	return ix.index.Close()
}
