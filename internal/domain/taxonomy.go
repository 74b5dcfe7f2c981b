package domain

import "fmt"

// Category представляет категорию таксономии
type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Icon          string        `json:"icon" yaml:"icon"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
	Filters       []Filter      `json:"filters" yaml:"filters"`
}

// Subcategory представляет подкатегорию внутри категории
type Subcategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Filter - определение фильтра UI (название + варианты)
type Filter struct {
	Name    string   `json:"name" yaml:"name"`
	Options []string `json:"options" yaml:"options"`
}

// HasSubcategory проверяет, что подкатегория принадлежит категории
func (c *Category) HasSubcategory(id string) bool {
	for _, s := range c.Subcategories {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Taxonomy - статическое дерево категорий только для чтения, безопасно для конкурентного чтения
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

// NewTaxonomy строит таксономию в заданном порядке.
// Дубли id категорий и подкатегорий внутри категории - ошибка.
func NewTaxonomy(categories []Category) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category %q: empty id", c.Name)
		}
		if _, dup := t.index[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}

		seen := make(map[string]struct{}, len(c.Subcategories))
		for _, s := range c.Subcategories {
			if s.ID == "" {
				return nil, fmt.Errorf("category %q: subcategory %q has empty id", c.ID, s.Name)
			}
			if _, dup := seen[s.ID]; dup {
				return nil, fmt.Errorf("category %q: duplicate subcategory id %q", c.ID, s.ID)
			}
			seen[s.ID] = struct{}{}
		}

		t.index[c.ID] = len(t.categories)
		t.categories = append(t.categories, c)
	}

	return t, nil
}

// Categories возвращает копию категорий в порядке отображения
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

func (t *Taxonomy) Category(id string) (Category, bool) {
	i, ok := t.index[id]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

// HasSubcategory - подкатегория subcategoryID есть в категории categoryID
func (t *Taxonomy) HasSubcategory(categoryID, subcategoryID string) bool {
	c, ok := t.Category(categoryID)
	if !ok {
		return false
	}
	return c.HasSubcategory(subcategoryID)
}
