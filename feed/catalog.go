package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog maps S&P 500 ticker symbols to company names. It is loaded
// once at startup from a bundled JSON file and read-only afterwards.
type Catalog struct {
	companies map[string]string
	symbols   []string
}

type catalogEntry struct {
	Symbol   string `json:"symbol"`
	Security string `json:"security"`
}

// LoadCatalog reads a constituents file of the form
// [{"symbol": "AAPL", "security": "Apple Inc."}, ...].
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", filename, err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", filename, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", filename)
	}

	c := &Catalog{companies: make(map[string]string, len(entries))}
	for _, e := range entries {
		if e.Symbol == "" {
			continue
		}
		if _, seen := c.companies[e.Symbol]; !seen {
			c.symbols = append(c.symbols, e.Symbol)
		}
		c.companies[e.Symbol] = e.Security
	}
	sort.Strings(c.symbols)
	return c, nil
}

// Symbols returns all tickers in alphabetical order.
func (c *Catalog) Symbols() []string {
	return c.symbols
}

// Company returns the company name for a ticker, and whether the
// ticker is part of the index.
func (c *Catalog) Company(symbol string) (string, bool) {
	name, ok := c.companies[symbol]
	return name, ok
}
