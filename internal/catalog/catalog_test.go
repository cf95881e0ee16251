package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Categories, 4)
	assert.Len(t, cat.AddOns, 6)

	// Every add-on is the same data-driven price in the default menu.
	for _, addOn := range cat.AddOns {
		assert.True(t, addOn.Price.Equal(usd("0.50")), "add-on %s", addOn.Name)
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 4)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cat.Categories, 4)

	bowls := cat.Categories[0]
	assert.Equal(t, "Bowls", bowls.Name)
	assert.True(t, bowls.AllowAddOns)
	require.NotEmpty(t, bowls.Items)
	price, ok := bowls.Items[0].BasePrice("Small")
	require.True(t, ok)
	assert.True(t, price.Equal(usd("9.50")))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_RejectsInvalidCatalog(t *testing.T) {
	// Item with both pricing modes must not pass the loader.
	raw := `{
		"categories": [{
			"name": "Bowls",
			"items": [{"name": "Broken", "flat_price": "3.25", "sizes": {"Small": "9.50"}}]
		}],
		"add_ons": []
	}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "invalid catalog")
}
