package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/vivemap/internal/domain"
)

// PlaceCard - карточка места для представления list
type PlaceCard struct {
	ID             int64            `json:"id"`
	Type           domain.PlaceType `json:"type"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Address        string           `json:"address"`
	Category       string           `json:"category"`
	Subcategory    string           `json:"subcategory"`
	IsFree         bool             `json:"is_free"`
	Rating         float64          `json:"rating"`
	CoverPhoto     string           `json:"cover_photo,omitempty"`
	OpeningHours   string           `json:"opening_hours,omitempty"`
	EventDate      string           `json:"event_date,omitempty"`
	DistanceMeters *float64         `json:"distance_meters,omitempty"`
}

// ReelItem - элемент ленты для представления reels
type ReelItem struct {
	ID          int64                `json:"id"`
	Type        domain.PlaceType     `json:"type"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	VideoURL    string               `json:"video_url"`
	LogoURL     string               `json:"logo_url"`
	Photos      []string             `json:"photos"`
	Rating      float64              `json:"rating"`
	SocialMedia []domain.SocialMedia `json:"social_media"`
}

// PlacesResponse - отфильтрованные места в выбранном представлении.
// Заполнено только поле, соответствующее view.
type PlacesResponse struct {
	View     domain.View         `json:"view"`
	Summary  string              `json:"summary"`
	Filters  domain.FilterState  `json:"filters"`
	Total    int                 `json:"total"`
	Places   []PlaceCard         `json:"places,omitempty"`
	Items    []ReelItem          `json:"items,omitempty"`
	Markers  []domain.MapMarker  `json:"markers,omitempty"`
	Viewport *domain.Viewport    `json:"viewport,omitempty"`
	Bounds   *domain.BoundingBox `json:"bounds,omitempty"`
}

// SummaryResponse - текстовое описание активных фильтров
type SummaryResponse struct {
	Summary string             `json:"summary"`
	Filters domain.FilterState `json:"filters"`
}

// CategoryListResponse - дерево категорий
type CategoryListResponse struct {
	Categories []domain.Category `json:"categories"`
	TimeFrames []string          `json:"time_frames"`
}

// SubcategoryListResponse - подкатегории одной категории
type SubcategoryListResponse struct {
	CategoryID    string               `json:"category_id"`
	Subcategories []domain.Subcategory `json:"subcategories"`
}

// MapConfigResponse - настройки виджета карты. Токен непрозрачен для сервиса.
type MapConfigResponse struct {
	AccessToken string          `json:"access_token,omitempty"`
	Available   bool            `json:"available"`
	Viewport    domain.Viewport `json:"viewport"`
}

// PlaceMapResponse - камера и маркер для одного места
type PlaceMapResponse struct {
	Marker   domain.MapMarker `json:"marker"`
	Viewport domain.Viewport  `json:"viewport"`
}

// SessionResponse - состояние фильтров сессии
type SessionResponse struct {
	ID        uuid.UUID          `json:"id"`
	State     domain.FilterState `json:"state"`
	Summary   string             `json:"summary"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RecentSearch - недавний поиск сессии
type RecentSearch struct {
	Summary string             `json:"summary"`
	Filters domain.FilterState `json:"filters"`
}

// RecentSearchesResponse - недавние поиски, последний первым
type RecentSearchesResponse struct {
	Searches []RecentSearch `json:"searches"`
}

// PresetResponse - готовый поиск с уже посчитанной меткой
type PresetResponse struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Kind    string             `json:"kind"`
	Filters domain.FilterPatch `json:"filters"`
	Summary string             `json:"summary"`
}

// PresetsResponse - пресеты, разбитые по видам
type PresetsResponse struct {
	Popular []PresetResponse `json:"popular"`
	Recent  []PresetResponse `json:"recent"`
}

// PopularSearchesResponse - самые частые применённые фильтры
type PopularSearchesResponse struct {
	Searches []domain.PopularSearch `json:"searches"`
}

// HealthResponse - состояние сервиса и зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
