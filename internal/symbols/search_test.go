package symbols

import "testing"

func testIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex([]Entry{
		{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Sector: "Technology"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Sector: "Technology"},
		{Symbol: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ", Sector: "Automotive"},
	})
	if err != nil {
		t.Fatalf("NewIndex failed: %v", err)
	}
	t.Cleanup(func() { ix.Close() })
	return ix
}

func TestSearch_ExactSymbol(t *testing.T) {
	ix := testIndex(t)
	got, err := ix.Search("aapl", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) == 0 || got[0].Symbol != "AAPL" {
		t.Errorf("expected AAPL first, got %+v", got)
	}
}

func TestSearch_SymbolPrefix(t *testing.T) {
	ix := testIndex(t)
	got, err := ix.Search("ms", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) == 0 || got[0].Symbol != "MSFT" {
		t.Errorf("expected MSFT first, got %+v", got)
	}
}

func TestSearch_CompanyName(t *testing.T) {
	ix := testIndex(t)
	got, err := ix.Search("tesla", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) == 0 || got[0].Symbol != "TSLA" {
		t.Errorf("expected TSLA first, got %+v", got)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	ix := testIndex(t)
	got, err := ix.Search("zzzz", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %+v", got)
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	ix := testIndex(t)
	got, err := ix.Search("   ", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results for blank query, got %+v", got)
	}
}

func TestLookup(t *testing.T) {
	ix := testIndex(t)
	e, ok := ix.Lookup("msft")
	if !ok || e.Name != "Microsoft Corporation" {
		t.Errorf("expected Microsoft entry, got %+v (ok=%v)", e, ok)
	}
	if _, ok := ix.Lookup("ZZZZ"); ok {
		t.Error("expected lookup miss for unknown symbol")
	}
}

func TestSymbols_Sorted(t *testing.T) {
	ix := testIndex(t)
	got := ix.Symbols()
	want := []string{"AAPL", "MSFT", "TSLA"}
	if len(got) != len(want) {
		t.Fatalf("expected %d symbols, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
