package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/usecase/dto"
)

// SearchUseCase - пресеты и популярные поиски
type SearchUseCase struct {
	presetRepo   repository.PresetRepository
	statsRepo    repository.SearchStatsRepository
	logger       *zap.Logger
	popularLimit int
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	presetRepo repository.PresetRepository,
	statsRepo repository.SearchStatsRepository,
	logger *zap.Logger,
	popularLimit int,
) *SearchUseCase {
	return &SearchUseCase{
		presetRepo:   presetRepo,
		statsRepo:    statsRepo,
		logger:       logger,
		popularLimit: popularLimit,
	}
}

// Presets - готовые поиски, разбитые на popular и recent
func (uc *SearchUseCase) Presets() *dto.PresetsResponse {
	resp := &dto.PresetsResponse{
		Popular: []dto.PresetResponse{},
		Recent:  []dto.PresetResponse{},
	}
	for _, p := range uc.presetRepo.Presets() {
		item := dto.ToPresetResponse(p)
		if p.Kind == domain.PresetKindRecent {
			resp.Recent = append(resp.Recent, item)
		} else {
			resp.Popular = append(resp.Popular, item)
		}
	}
	return resp
}

// Popular - самые частые метки фильтров; limit=0 - значение по умолчанию
func (uc *SearchUseCase) Popular(ctx context.Context, limit int) (*dto.PopularSearchesResponse, error) {
	if limit == 0 {
		limit = uc.popularLimit
	}
	if limit < 0 || limit > 50 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"limit": "must be between 1 and 50"})
	}

	top, err := uc.statsRepo.TopPopular(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to get popular searches", zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return &dto.PopularSearchesResponse{Searches: top}, nil
}

// RecordApplied засчитывает события применения фильтров.
// Возвращает число засчитанных событий; пустые состояния не считаются поиском.
func (uc *SearchUseCase) RecordApplied(ctx context.Context, events []domain.FilterAppliedEvent) (int, error) {
	summaries := make([]string, 0, len(events))
	for i := range events {
		if events[i].Countable() {
			summaries = append(summaries, events[i].Summary)
		}
	}
	if len(summaries) == 0 {
		return 0, nil
	}

	if err := uc.statsRepo.IncrementPopular(ctx, summaries); err != nil {
		return 0, err
	}
	return len(summaries), nil
}

// DecodeFilterEvent разбирает поле "data" сообщения стрима
func DecodeFilterEvent(msg domain.StreamMessage) (*domain.FilterAppliedEvent, error) {
	raw, ok := msg.Data["data"].(string)
	if !ok {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"message_id": msg.ID, "reason": "missing data field"})
	}

	var event domain.FilterAppliedEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"message_id": msg.ID, "reason": err.Error()})
	}
	// метка всегда берётся из состояния
	event.Summary = domain.FilterSummary(event.State)
	return &event, nil
}
