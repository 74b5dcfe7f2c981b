package dto

import (
	"math"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/pkg/utils"
)

// ToPlaceCard - карточка места; distance считается, если известна точка пользователя
func ToPlaceCard(p *domain.Place, origin *domain.Point) PlaceCard {
	card := PlaceCard{
		ID:           p.ID,
		Type:         p.Type,
		Name:         p.Name,
		Description:  p.Description,
		Address:      p.Address,
		Category:     p.Category,
		Subcategory:  p.Subcategory,
		IsFree:       p.IsFree,
		Rating:       p.Rating,
		CoverPhoto:   p.CoverPhoto(),
		OpeningHours: p.OpeningHours(),
	}
	if p.Event != nil {
		card.EventDate = p.Event.EventDate
	}
	if origin != nil {
		km := utils.HaversineDistance(origin.Lat, origin.Lon, p.Location.Lat, p.Location.Lon)
		meters := math.Round(km * 1000)
		card.DistanceMeters = &meters
	}
	return card
}

// ToReelItem - элемент ленты
func ToReelItem(p *domain.Place) ReelItem {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	social := p.SocialMedia
	if social == nil {
		social = []domain.SocialMedia{}
	}
	return ReelItem{
		ID:          p.ID,
		Type:        p.Type,
		Name:        p.Name,
		Description: p.Description,
		VideoURL:    p.VideoURL,
		LogoURL:     p.LogoURL,
		Photos:      photos,
		Rating:      p.Rating,
		SocialMedia: social,
	}
}

// ToPresetResponse - пресет с меткой, которую он даст на пустом состоянии
func ToPresetResponse(p domain.SearchPreset) PresetResponse {
	state := domain.DefaultFilterState().Merge(p.Filter)
	return PresetResponse{
		ID:      p.ID,
		Name:    p.Name,
		Kind:    p.Kind,
		Filters: p.Filter,
		Summary: domain.FilterSummary(state),
	}
}
