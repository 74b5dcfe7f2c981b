package dto

import (
	"strings"

	"github.com/vivemap/internal/domain"
)

// PlacesQuery - параметры фильтрации из query string
type PlacesQuery struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
	TimeFrame     string   `json:"time_frame" validate:"timeframe"`
	Eventual      bool     `json:"eventual"`
	Permanent     bool     `json:"permanent"`
	Free          bool     `json:"free"`
	Promotions    bool     `json:"promotions"`
	View          string   `json:"view" validate:"view"`
	Lat           *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon           *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

// FilterState собирает состояние фильтров из параметров запроса.
// Подкатегории применяются и без категории: запрос без состояния не проходит через редьюсер.
func (q PlacesQuery) FilterState() domain.FilterState {
	s := domain.DefaultFilterState()
	s.Category = q.Category
	for _, sc := range q.Subcategories {
		if sc != "" && !s.HasSubcategory(sc) {
			s.Subcategories = append(s.Subcategories, sc)
		}
	}
	s.TimeFrame = q.TimeFrame
	s.ShowEventual = q.Eventual
	s.ShowPermanent = q.Permanent
	s.ShowFreeOnly = q.Free
	s.ShowPromotions = q.Promotions
	return s
}

// Origin - точка пользователя, если переданы lat и lon
func (q PlacesQuery) Origin() *domain.Point {
	if q.Lat == nil || q.Lon == nil {
		return nil
	}
	return &domain.Point{Lat: *q.Lat, Lon: *q.Lon}
}

// SplitList разбирает список через запятую, пустые элементы пропускаются
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ActionRequest - действие над состоянием фильтров сессии
type ActionRequest struct {
	Type     string              `json:"type" validate:"required,oneof=toggle_category toggle_subcategory toggle_time_frame toggle_flag set_flag apply_preset reset"`
	Value    string              `json:"value,omitempty" validate:"max=100"`
	Flag     string              `json:"flag,omitempty" validate:"flag"`
	Enabled  bool                `json:"enabled,omitempty"`
	PresetID string              `json:"preset_id,omitempty" validate:"max=100"`
	Patch    *domain.FilterPatch `json:"patch,omitempty"`
}

// Action переводит запрос в доменное действие (без проверки по таксономии)
func (r ActionRequest) Action() domain.Action {
	return domain.Action{
		Type:    domain.ActionType(r.Type),
		Value:   r.Value,
		Flag:    domain.Flag(r.Flag),
		Enabled: r.Enabled,
		Patch:   r.Patch,
	}
}

// PopularQuery - параметры списка популярных поисков
type PopularQuery struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"`
}
