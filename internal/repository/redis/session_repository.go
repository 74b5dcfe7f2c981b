package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	apperrors "github.com/vivemap/internal/pkg/errors"
	"go.uber.org/zap"
)

// SessionKey - ключ сессии фильтров
func SessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewSessionRepository(client *redis.Client, logger *zap.Logger) repository.SessionRepository {
	return &sessionRepository{
		client: client,
		logger: logger,
	}
}

// Save записывает сессию целиком (SET), последний писатель побеждает
func (r *sessionRepository) Save(ctx context.Context, session *domain.FilterSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, SessionKey(session.ID), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to save session",
			zap.String("session_id", session.ID.String()),
			zap.Error(err))
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.FilterSession, error) {
	data, err := r.client.Get(ctx, SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get session",
			zap.String("session_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.FilterSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if session.State.Subcategories == nil {
		session.State.Subcategories = []string{}
	}
	return &session, nil
}
