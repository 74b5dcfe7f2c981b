package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vivemap/internal/pkg/utils"
	"github.com/vivemap/internal/usecase"
)

// CategoryHandler - обработчик запросов к таксономии
type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	logger     *zap.Logger
}

// NewCategoryHandler - создание нового CategoryHandler
func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// GetCategories godoc
// @Summary Список категорий
// @Description Категории в порядке отображения с подкатегориями, фильтрами и доступными временными рамками
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoryListResponse}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	result := h.categoryUC.Categories()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Categories),
	})
}

// GetCategory godoc
// @Summary Категория
// @Tags Categories
// @Produce json
// @Param id path string true "ID категории" example(eventos)
// @Success 200 {object} utils.SuccessResponse{data=domain.Category}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categoryUC.Category(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, category, nil)
}

// GetSubcategories godoc
// @Summary Подкатегории категории
// @Tags Categories
// @Produce json
// @Param id path string true "ID категории"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubcategoryListResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/categories/{id}/subcategories [get]
func (h *CategoryHandler) GetSubcategories(c *fiber.Ctx) error {
	result, err := h.categoryUC.Subcategories(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Subcategories),
	})
}
