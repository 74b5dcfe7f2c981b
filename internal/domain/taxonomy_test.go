package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxonomy(t *testing.T) {
	categories := []Category{
		{ID: "gastronomia", Name: "Gastronomía", Subcategories: []Subcategory{{ID: "restaurantes", Name: "Restaurantes"}}},
		{ID: "cultura", Name: "Cultura", Subcategories: []Subcategory{{ID: "museos", Name: "Museos"}}},
	}

	tax, err := NewTaxonomy(categories)
	require.NoError(t, err)

	got := tax.Categories()
	require.Len(t, got, 2)
	assert.Equal(t, "gastronomia", got[0].ID)
	assert.Equal(t, "cultura", got[1].ID)

	c, ok := tax.Category("cultura")
	assert.True(t, ok)
	assert.Equal(t, "Cultura", c.Name)

	_, ok = tax.Category("salud")
	assert.False(t, ok)

	assert.True(t, tax.HasSubcategory("cultura", "museos"))
	assert.False(t, tax.HasSubcategory("cultura", "restaurantes"))
	assert.False(t, tax.HasSubcategory("salud", "museos"))
}

func TestNewTaxonomy_Rejects(t *testing.T) {
	t.Run("duplicate category", func(t *testing.T) {
		_, err := NewTaxonomy([]Category{{ID: "a"}, {ID: "a"}})
		assert.Error(t, err)
	})

	t.Run("duplicate subcategory", func(t *testing.T) {
		_, err := NewTaxonomy([]Category{{ID: "a", Subcategories: []Subcategory{{ID: "x"}, {ID: "x"}}}})
		assert.Error(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewTaxonomy([]Category{{Name: "Sin id"}})
		assert.Error(t, err)
	})
}

func TestTaxonomy_CategoriesIsACopy(t *testing.T) {
	tax, err := NewTaxonomy([]Category{{ID: "a", Name: "A"}})
	require.NoError(t, err)

	got := tax.Categories()
	got[0].Name = "changed"

	c, _ := tax.Category("a")
	assert.Equal(t, "A", c.Name)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	assert.NoError(t, err)
	assert.Equal(t, ViewReels, v)

	for _, raw := range []string{"reels", "list", "map"} {
		v, err := ParseView(raw)
		assert.NoError(t, err)
		assert.Equal(t, View(raw), v)
	}

	_, err = ParseView("grid")
	assert.Error(t, err)
}
