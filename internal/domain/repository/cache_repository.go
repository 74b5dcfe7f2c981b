package repository

import (
	"context"
	"time"

	"github.com/vivemap/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах - (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetPlaces получает каталог мест из кеша. Промах - (nil, nil).
	GetPlaces(ctx context.Context) ([]domain.Place, error)

	// SetPlaces сохраняет каталог мест в кеше
	SetPlaces(ctx context.Context, places []domain.Place, ttl time.Duration) error
}
