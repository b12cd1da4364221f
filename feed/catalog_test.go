package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sp500.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `[
		{"symbol": "MSFT", "security": "Microsoft Corporation"},
		{"symbol": "AAPL", "security": "Apple Inc."}
	]`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, catalog.Symbols())
	name, ok := catalog.Company("AAPL")
	assert.True(t, ok)
	assert.Equal(t, "Apple Inc.", name)
	_, ok = catalog.Company("ZZZZ")
	assert.False(t, ok)
}

func TestLoadCatalogDuplicateSymbolLastWins(t *testing.T) {
	path := writeCatalog(t, `[
		{"symbol": "AAPL", "security": "Old Name"},
		{"symbol": "AAPL", "security": "Apple Inc."}
	]`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Symbols(), 1)
	name, _ := catalog.Company("AAPL")
	assert.Equal(t, "Apple Inc.", name)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadCatalog(writeCatalog(t, `not json`))
	assert.Error(t, err)

	_, err = LoadCatalog(writeCatalog(t, `[]`))
	assert.Error(t, err)
}

func TestBundledCatalogParses(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join("..", "data", "sp500.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Symbols())
	_, ok := catalog.Company("AAPL")
	assert.True(t, ok)
}
