package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"go.uber.org/zap"
)

// KeyPopularSearches - sorted set: метка фильтра -> число применений
const KeyPopularSearches = "searches:popular"

// RecentSearchesKey - список недавних поисков сессии
func RecentSearchesKey(sessionID uuid.UUID) string {
	return "searches:recent:" + sessionID.String()
}

type searchStatsRepository struct {
	client    *redis.Client
	recentTTL time.Duration
	logger    *zap.Logger
}

// NewSearchStatsRepository - recentTTL ограничивает жизнь списка недавних поисков (0 - без TTL)
func NewSearchStatsRepository(client *redis.Client, recentTTL time.Duration, logger *zap.Logger) repository.SearchStatsRepository {
	return &searchStatsRepository{
		client:    client,
		recentTTL: recentTTL,
		logger:    logger,
	}
}

func (r *searchStatsRepository) IncrementPopular(ctx context.Context, summaries []string) error {
	if len(summaries) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, s := range summaries {
		pipe.ZIncrBy(ctx, KeyPopularSearches, 1, s)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to increment popular searches",
			zap.Int("count", len(summaries)),
			zap.Error(err))
		return fmt.Errorf("increment popular searches: %w", err)
	}
	return nil
}

func (r *searchStatsRepository) TopPopular(ctx context.Context, limit int) ([]domain.PopularSearch, error) {
	if limit <= 0 {
		return []domain.PopularSearch{}, nil
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, KeyPopularSearches, 0, int64(limit-1)).Result()
	if err != nil {
		r.logger.Error("Failed to read popular searches", zap.Error(err))
		return nil, fmt.Errorf("read popular searches: %w", err)
	}

	out := make([]domain.PopularSearch, 0, len(entries))
	for _, e := range entries {
		summary, ok := e.Member.(string)
		if !ok {
			continue
		}
		out = append(out, domain.PopularSearch{Summary: summary, Count: int64(e.Score)})
	}
	return out, nil
}

// PushRecent переносит состояние в начало списка (повтор удаляется) и обрезает список до limit
func (r *searchStatsRepository) PushRecent(ctx context.Context, sessionID uuid.UUID, state domain.FilterState, limit int) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	key := RecentSearchesKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, data)
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(limit-1))
	if r.recentTTL > 0 {
		pipe.Expire(ctx, key, r.recentTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to push recent search",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		return fmt.Errorf("push recent search: %w", err)
	}
	return nil
}

func (r *searchStatsRepository) Recent(ctx context.Context, sessionID uuid.UUID) ([]domain.FilterState, error) {
	items, err := r.client.LRange(ctx, RecentSearchesKey(sessionID), 0, -1).Result()
	if err != nil {
		r.logger.Error("Failed to read recent searches",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("read recent searches: %w", err)
	}

	out := make([]domain.FilterState, 0, len(items))
	for _, item := range items {
		var s domain.FilterState
		if err := json.Unmarshal([]byte(item), &s); err != nil {
			r.logger.Warn("Skipping malformed recent search", zap.Error(err))
			continue
		}
		if s.Subcategories == nil {
			s.Subcategories = []string{}
		}
		out = append(out, s)
	}
	return out, nil
}
