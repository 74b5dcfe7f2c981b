package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchPreset - готовый поиск из панели фильтров ("Qué hacer el fin de semana")
type SearchPreset struct {
	ID     string      `json:"id" yaml:"id"`
	Name   string      `json:"name" yaml:"name"`
	Kind   string      `json:"kind" yaml:"kind"` // popular | recent
	Filter FilterPatch `json:"filters" yaml:"filters"`
}

// Виды пресетов
const (
	PresetKindPopular = "popular"
	PresetKindRecent  = "recent"
)

// FilterSession - состояние фильтров, принадлежащее одной сессии просмотра
type FilterSession struct {
	ID        uuid.UUID   `json:"id"`
	State     FilterState `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// PopularSearch - агрегированный счётчик применений фильтра
type PopularSearch struct {
	Summary string `json:"summary"`
	Count   int64  `json:"count"`
}
