package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vivemap/internal/domain"
)

// SearchStatsRepository - статистика применённых фильтров
type SearchStatsRepository interface {
	// IncrementPopular увеличивает счётчики меток (одна метка может встречаться несколько раз)
	IncrementPopular(ctx context.Context, summaries []string) error

	// TopPopular возвращает limit самых частых меток по убыванию счётчика
	TopPopular(ctx context.Context, limit int) ([]domain.PopularSearch, error)

	// PushRecent добавляет состояние в начало списка недавних поисков сессии
	PushRecent(ctx context.Context, sessionID uuid.UUID, state domain.FilterState, limit int) error

	// Recent возвращает недавние поиски сессии, последний первым
	Recent(ctx context.Context, sessionID uuid.UUID) ([]domain.FilterState, error)
}
