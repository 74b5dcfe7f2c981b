package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vivemap/internal/pkg/utils"
	"github.com/vivemap/internal/pkg/validator"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/usecase/dto"
)

// SearchHandler - обработчик пресетов и популярных поисков
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// GetPresets godoc
// @Summary Готовые поиски
// @Description Пресеты панели фильтров ("Qué hacer el fin de semana", "Fiestas cerca"), разбитые на popular и recent
// @Tags Searches
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PresetsResponse}
// @Router /api/v1/searches/presets [get]
func (h *SearchHandler) GetPresets(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.searchUC.Presets(), nil)
}

// GetPopular godoc
// @Summary Популярные поиски
// @Description Самые частые метки применённых фильтров по всем сессиям
// @Tags Searches
// @Produce json
// @Param limit query int false "Количество (1-50)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.PopularSearchesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/searches/popular [get]
func (h *SearchHandler) GetPopular(c *fiber.Ctx) error {
	req := dto.PopularQuery{Limit: c.QueryInt("limit", 0)}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Popular(c.Context(), req.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Searches),
		Limit: req.Limit,
	})
}
