package static

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Имена файлов внутри data/
const (
	TaxonomyFile = "data/taxonomy.yaml"
	PlacesFile   = "data/places.yaml"
	PresetsFile  = "data/presets.yaml"
)

type taxonomyDocument struct {
	Categories []domain.Category `yaml:"categories"`
}

type placesDocument struct {
	Places []domain.Place `yaml:"places"`
}

type presetsDocument struct {
	Presets []domain.SearchPreset `yaml:"presets"`
}

// Catalog - каталог, собранный из встроенных YAML файлов. После загрузки только читается.
type Catalog struct {
	taxonomy *domain.Taxonomy
	places   []domain.Place
	index    map[int64]int
	presets  []domain.SearchPreset
	logger   *zap.Logger
}

var (
	_ repository.PlaceRepository    = (*Catalog)(nil)
	_ repository.TaxonomyRepository = (*Catalog)(nil)
	_ repository.PresetRepository   = (*Catalog)(nil)
)

// Load читает встроенные данные
func Load(logger *zap.Logger) (*Catalog, error) {
	return LoadFS(dataFS, logger)
}

// LoadFS читает таксономию, места и пресеты из fsys и проверяет их согласованность
func LoadFS(fsys fs.FS, logger *zap.Logger) (*Catalog, error) {
	var taxDoc taxonomyDocument
	if err := decodeFile(fsys, TaxonomyFile, &taxDoc); err != nil {
		return nil, err
	}
	tax, err := domain.NewTaxonomy(taxDoc.Categories)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}

	var placesDoc placesDocument
	if err := decodeFile(fsys, PlacesFile, &placesDoc); err != nil {
		return nil, err
	}

	c := &Catalog{
		taxonomy: tax,
		places:   make([]domain.Place, 0, len(placesDoc.Places)),
		index:    make(map[int64]int, len(placesDoc.Places)),
		logger:   logger,
	}

	for i := range placesDoc.Places {
		p := placesDoc.Places[i]
		if err := ValidatePlace(tax, &p); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate place id %d", p.ID)
		}
		c.index[p.ID] = len(c.places)
		c.places = append(c.places, p)
	}

	var presetsDoc presetsDocument
	if err := decodeFile(fsys, PresetsFile, &presetsDoc); err != nil {
		return nil, err
	}
	for _, preset := range presetsDoc.Presets {
		if err := validatePreset(tax, preset); err != nil {
			return nil, err
		}
	}
	c.presets = presetsDoc.Presets

	logger.Info("Static catalog loaded",
		zap.Int("categories", len(taxDoc.Categories)),
		zap.Int("places", len(c.places)),
		zap.Int("presets", len(c.presets)),
	)

	return c, nil
}

func decodeFile(fsys fs.FS, name string, out interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// ValidatePlace проверяет место и его привязку к таксономии
func ValidatePlace(tax *domain.Taxonomy, p *domain.Place) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := tax.Category(p.Category); !ok {
		return fmt.Errorf("place %d: unknown category %q", p.ID, p.Category)
	}
	if p.Subcategory != "" && !tax.HasSubcategory(p.Category, p.Subcategory) {
		return fmt.Errorf("place %d: subcategory %q is not part of %q", p.ID, p.Subcategory, p.Category)
	}
	return nil
}

func validatePreset(tax *domain.Taxonomy, preset domain.SearchPreset) error {
	if preset.ID == "" {
		return fmt.Errorf("preset %q: empty id", preset.Name)
	}
	if preset.Kind != domain.PresetKindPopular && preset.Kind != domain.PresetKindRecent {
		return fmt.Errorf("preset %q: unknown kind %q", preset.ID, preset.Kind)
	}

	f := preset.Filter
	if f.TimeFrame != nil && !domain.IsValidTimeFrame(*f.TimeFrame) {
		return fmt.Errorf("preset %q: unknown time frame %q", preset.ID, *f.TimeFrame)
	}
	if f.Category == nil {
		if len(f.Subcategories) > 0 {
			return fmt.Errorf("preset %q: subcategories without category", preset.ID)
		}
		return nil
	}
	if _, ok := tax.Category(*f.Category); !ok {
		return fmt.Errorf("preset %q: unknown category %q", preset.ID, *f.Category)
	}
	for _, sc := range f.Subcategories {
		if !tax.HasSubcategory(*f.Category, sc) {
			return fmt.Errorf("preset %q: subcategory %q is not part of %q", preset.ID, sc, *f.Category)
		}
	}
	return nil
}

func (c *Catalog) List(ctx context.Context) ([]domain.Place, error) {
	out := make([]domain.Place, len(c.places))
	copy(out, c.places)
	return out, nil
}

func (c *Catalog) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, errors.ErrPlaceNotFound
	}
	p := c.places[i]
	return &p, nil
}

func (c *Catalog) Taxonomy() *domain.Taxonomy {
	return c.taxonomy
}

// Presets возвращает пресеты в порядке файла
func (c *Catalog) Presets() []domain.SearchPreset {
	out := make([]domain.SearchPreset, len(c.presets))
	copy(out, c.presets)
	return out
}
