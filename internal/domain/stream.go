package domain

import (
	"time"

	"github.com/google/uuid"
)

// Названия стримов
const (
	StreamFiltersApplied = "stream:filters:applied"
)

// Ключи кеша
const (
	CacheKeyCatalogPlaces = "catalog:places"
)

// FilterAppliedEvent публикуется после каждого изменения состояния фильтров сессии
type FilterAppliedEvent struct {
	SessionID uuid.UUID   `json:"session_id"`
	Action    ActionType  `json:"action"`
	State     FilterState `json:"state"`
	Summary   string      `json:"summary"`
	AppliedAt time.Time   `json:"applied_at"`
}

// Countable - событие засчитывается в популярные поиски. Подпись по умолчанию не считается.
func (e *FilterAppliedEvent) Countable() bool {
	return e.Summary != "" && e.Summary != SummaryFallback
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data map[string]interface{}
}
