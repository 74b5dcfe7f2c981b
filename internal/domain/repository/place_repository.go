package repository

import (
	"context"

	"github.com/vivemap/internal/domain"
)

// PlaceRepository - источник каталога мест (встроенный YAML или PostgreSQL)
type PlaceRepository interface {
	// List возвращает все места в порядке каталога
	List(ctx context.Context) ([]domain.Place, error)

	// GetByID возвращает место по ID или errors.ErrPlaceNotFound
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// PlaceWriter - запись каталога (используется командой seed)
type PlaceWriter interface {
	// UpsertPlaces вставляет или обновляет места по ID
	UpsertPlaces(ctx context.Context, places []domain.Place) (int, error)
}
