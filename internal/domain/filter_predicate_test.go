package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePlaces() []Place {
	return []Place{
		{
			ID:          1,
			Type:        PlaceTypeBusiness,
			Name:        "Café Delicioso",
			Category:    "gastronomia",
			Subcategory: "Cafeterías",
			IsFree:      false,
			Business:    &BusinessDetails{OpeningHours: "Lunes a Sábado: 7:00 AM - 8:00 PM"},
		},
		{
			ID:          2,
			Type:        PlaceTypeEvent,
			Name:        "Concierto en el Parque",
			Category:    "eventos",
			Subcategory: "Conciertos",
			IsFree:      false,
			Event:       &EventDetails{EventDate: "2023-08-15"},
		},
		{
			ID:          3,
			Type:        PlaceTypePublic,
			Name:        "Mirador de la Ciudad",
			Category:    "cultura",
			Subcategory: "Miradores",
			IsFree:      true,
			Public:      &PublicPlaceDetails{OpeningHours: "Abierto: 24 horas"},
		},
	}
}

func ids(places []Place) []int64 {
	out := make([]int64, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPlaces(t *testing.T) {
	tests := []struct {
		name     string
		state    FilterState
		expected []int64
	}{
		{
			name:     "default state keeps everything",
			state:    DefaultFilterState(),
			expected: []int64{1, 2, 3},
		},
		{
			name:     "category",
			state:    FilterState{Category: "gastronomia"},
			expected: []int64{1},
		},
		{
			name:     "free only",
			state:    FilterState{ShowFreeOnly: true},
			expected: []int64{3},
		},
		{
			name:     "eventual only",
			state:    FilterState{ShowEventual: true},
			expected: []int64{2},
		},
		{
			name:     "permanent only",
			state:    FilterState{ShowPermanent: true},
			expected: []int64{1, 3},
		},
		{
			name:     "eventual and permanent disable temporality",
			state:    FilterState{ShowEventual: true, ShowPermanent: true},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "subcategory set membership",
			state:    FilterState{Subcategories: []string{"Miradores", "Conciertos"}},
			expected: []int64{2, 3},
		},
		{
			name:     "category and subcategory are conjunctive",
			state:    FilterState{Category: "cultura", Subcategories: []string{"Conciertos"}},
			expected: []int64{},
		},
		{
			name:     "promotions is a no-op",
			state:    FilterState{ShowPromotions: true},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "time frame is a no-op",
			state:    FilterState{TimeFrame: TimeFrameToday},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "permanent and free",
			state:    FilterState{ShowPermanent: true, ShowFreeOnly: true},
			expected: []int64{3},
		},
		{
			name:     "unknown category yields empty result",
			state:    FilterState{Category: "nope"},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPlaces(samplePlaces(), tt.state)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterPlaces_Identity(t *testing.T) {
	places := samplePlaces()

	got := FilterPlaces(places, DefaultFilterState())

	assert.Equal(t, places, got)
}

func TestFilterPlaces_Idempotent(t *testing.T) {
	states := []FilterState{
		DefaultFilterState(),
		{Category: "gastronomia"},
		{ShowPermanent: true},
		{ShowEventual: true, ShowFreeOnly: true},
		{Subcategories: []string{"Miradores"}},
	}

	for _, s := range states {
		once := FilterPlaces(samplePlaces(), s)
		twice := FilterPlaces(once, s)
		assert.Equal(t, once, twice, FilterSummary(s))
	}
}

func TestFilterPlaces_EmptyInput(t *testing.T) {
	got := FilterPlaces(nil, FilterState{Category: "gastronomia"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterPlaces_DoesNotReorder(t *testing.T) {
	places := samplePlaces()
	places[0], places[2] = places[2], places[0]

	got := FilterPlaces(places, FilterState{ShowPermanent: true})

	assert.Equal(t, []int64{3, 1}, ids(got))
}
