package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	fish, ok := c.Lookup("fish")
	require.True(t, ok)
	assert.Equal(t, TypeFood, fish.Type)
	assert.Equal(t, 10, fish.Cost)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)

	for _, it := range c.ByType(TypeToy) {
		assert.Equal(t, TypeToy, it.Type)
	}
	assert.Len(t, c.ByType(TypeToy), 3)
}

func TestNewRejectsInvalidItems(t *testing.T) {
	_, err := New(Item{ID: "", Type: TypeFood})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = New(Item{ID: "x", Type: "weapon"})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestLoadFileExtendsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	data := `
[[items]]
id = "shrimp"
type = "food"
name = "Shrimp"
cost = 40
satiety = 20
happiness = 15

[[items]]
id = "fish"
type = "food"
name = "Dried Fish"
cost = 12
satiety = 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	shrimp, ok := c.Lookup("shrimp")
	require.True(t, ok)
	assert.Equal(t, 40, shrimp.Cost)

	fish, _ := c.Lookup("fish")
	assert.Equal(t, 12, fish.Cost)

	_, ok = c.Lookup("salmon")
	assert.True(t, ok)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
