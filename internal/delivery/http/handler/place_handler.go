package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vivemap/internal/pkg/utils"
	"github.com/vivemap/internal/usecase"
)

// PlaceHandler - обработчик запросов к каталогу мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// ListPlaces godoc
// @Summary Места по фильтрам
// @Description Фильтрует каталог по категории, подкатегориям, временной рамке и флагам и возвращает результат в представлении reels, list или map
// @Tags Places
// @Produce json
// @Param category query string false "Категория" example(eventos)
// @Param subcategories query string false "Подкатегории через запятую" example(Conciertos,Festivales)
// @Param time_frame query string false "Временная рамка" Enums(Hoy, Fin de semana, Esta semana, Este mes)
// @Param eventual query bool false "Только эвентуальные"
// @Param permanent query bool false "Только постоянные"
// @Param free query bool false "Только бесплатные"
// @Param promotions query bool false "Промоакции"
// @Param view query string false "Представление" Enums(reels, list, map) default(reels)
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) ListPlaces(c *fiber.Ctx) error {
	start := time.Now()

	q, err := parsePlacesQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.ListPlaces(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetPlace godoc
// @Summary Детальная карточка места
// @Tags Places
// @Produce json
// @Param id path int true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [get]
func (h *PlaceHandler) GetPlace(c *fiber.Ctx) error {
	id, err := parsePlaceID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.GetPlace(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, nil)
}

// PlaceMap godoc
// @Summary Карта одного места
// @Description Маркер места и камера, сфокусированная на нём
// @Tags Places
// @Produce json
// @Param id path int true "ID места"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceMapResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id}/map [get]
func (h *PlaceHandler) PlaceMap(c *fiber.Ctx) error {
	id, err := parsePlaceID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.PlaceMap(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Summary godoc
// @Summary Метка активных фильтров
// @Description Возвращает текст вида "eventos - Conciertos - Fin de semana - Gratis" для переданных фильтров
// @Tags Places
// @Produce json
// @Param category query string false "Категория"
// @Param subcategories query string false "Подкатегории через запятую"
// @Param time_frame query string false "Временная рамка"
// @Param eventual query bool false "Эвентуальные"
// @Param permanent query bool false "Постоянные"
// @Param free query bool false "Бесплатные"
// @Param promotions query bool false "Промоакции"
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/summary [get]
func (h *PlaceHandler) Summary(c *fiber.Ctx) error {
	q, err := parsePlacesQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.Summary(q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// MapConfig godoc
// @Summary Настройки виджета карты
// @Description Токен карты и камера по умолчанию. available=false, если токен не настроен
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Router /api/v1/map/config [get]
func (h *PlaceHandler) MapConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.placeUC.MapConfig(), nil)
}
