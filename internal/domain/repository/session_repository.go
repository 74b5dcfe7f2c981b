package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vivemap/internal/domain"
)

// SessionRepository хранит состояние фильтров сессий
type SessionRepository interface {
	// Save целиком заменяет сессию и продлевает TTL
	Save(ctx context.Context, session *domain.FilterSession, ttl time.Duration) error

	// Get возвращает сессию или errors.ErrSessionNotFound
	Get(ctx context.Context, id uuid.UUID) (*domain.FilterSession, error)
}
