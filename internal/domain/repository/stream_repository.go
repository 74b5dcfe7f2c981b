package repository

import (
	"context"
	"time"

	"github.com/vivemap/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group (BUSYGROUP не ошибка)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до count новых сообщений, блокируясь не дольше block
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64, block time.Duration) ([]domain.StreamMessage, error)

	// ConsumePending перечитывает до count сообщений из PEL данного consumer (ID "0"), без блокировки
	ConsumePending(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// ClaimStale забирает себе сообщения группы, висящие в PEL дольше minIdle (XAUTOCLAIM).
	// Возвращает число перехваченных сообщений.
	ClaimStale(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int64) (int, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, ids ...string) error

	// PublishToStream публикует JSON в поле "data"
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
