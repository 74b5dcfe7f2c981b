package repository

import "github.com/vivemap/internal/domain"

// TaxonomyRepository отдаёт дерево категорий, загруженное при старте
type TaxonomyRepository interface {
	Taxonomy() *domain.Taxonomy
}

// PresetRepository отдаёт готовые поисковые пресеты
type PresetRepository interface {
	Presets() []domain.SearchPreset
}
