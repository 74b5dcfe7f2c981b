package usecase

import (
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/usecase/dto"
)

// CategoryUseCase - чтение таксономии
type CategoryUseCase struct {
	taxonomyRepo repository.TaxonomyRepository
	logger       *zap.Logger
}

func NewCategoryUseCase(taxonomyRepo repository.TaxonomyRepository, logger *zap.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		taxonomyRepo: taxonomyRepo,
		logger:       logger,
	}
}

// Categories - все категории в порядке отображения и доступные временные рамки
func (uc *CategoryUseCase) Categories() *dto.CategoryListResponse {
	return &dto.CategoryListResponse{
		Categories: uc.taxonomyRepo.Taxonomy().Categories(),
		TimeFrames: domain.ValidTimeFrames(),
	}
}

func (uc *CategoryUseCase) Category(id string) (*domain.Category, error) {
	c, ok := uc.taxonomyRepo.Taxonomy().Category(id)
	if !ok {
		return nil, errors.ErrCategoryNotFound
	}
	return &c, nil
}

func (uc *CategoryUseCase) Subcategories(id string) (*dto.SubcategoryListResponse, error) {
	c, err := uc.Category(id)
	if err != nil {
		return nil, err
	}
	subs := c.Subcategories
	if subs == nil {
		subs = []domain.Subcategory{}
	}
	return &dto.SubcategoryListResponse{
		CategoryID:    c.ID,
		Subcategories: subs,
	}, nil
}
