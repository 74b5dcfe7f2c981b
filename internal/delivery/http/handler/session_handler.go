package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/pkg/utils"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/usecase/dto"
)

// SessionHandler - обработчик сессий фильтров
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// CreateSession godoc
// @Summary Новая сессия фильтров
// @Description Создаёт сессию с пустым состоянием фильтров
// @Tags Sessions
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	result, err := h.sessionUC.Create(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// GetSession godoc
// @Summary Состояние сессии
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	result, err := h.sessionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Dispatch godoc
// @Summary Применить действие к фильтрам
// @Description Переключение категории, подкатегории, временной рамки или флага, применение пресета, сброс. Возвращает новое состояние целиком
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param request body dto.ActionRequest true "Действие"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/actions [post]
func (h *SessionHandler) Dispatch(c *fiber.Ctx) error {
	var req dto.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	result, err := h.sessionUC.Dispatch(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// SessionPlaces godoc
// @Summary Места по состоянию сессии
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Param view query string false "Представление" Enums(reels, list, map) default(reels)
// @Param lat query number false "Широта пользователя"
// @Param lon query number false "Долгота пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/places [get]
func (h *SessionHandler) SessionPlaces(c *fiber.Ctx) error {
	q, err := parsePlacesQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if (q.Lat == nil) != (q.Lon == nil) {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.sessionUC.Places(c.Context(), c.Params("id"), q.View, q.Origin())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// RecentSearches godoc
// @Summary Недавние поиски сессии
// @Tags Sessions
// @Produce json
// @Param id path string true "ID сессии (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RecentSearchesResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/recent [get]
func (h *SessionHandler) RecentSearches(c *fiber.Ctx) error {
	result, err := h.sessionUC.Recent(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Searches),
	})
}
