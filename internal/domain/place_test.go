package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_Validate(t *testing.T) {
	tests := []struct {
		name    string
		place   Place
		wantErr bool
	}{
		{
			name:  "business with payload",
			place: Place{ID: 1, Type: PlaceTypeBusiness, Location: Point{Lat: -12.06, Lon: -75.2}, Business: &BusinessDetails{}},
		},
		{
			name:  "event with payload",
			place: Place{ID: 2, Type: PlaceTypeEvent, Event: &EventDetails{}},
		},
		{
			name:  "public with payload",
			place: Place{ID: 3, Type: PlaceTypePublic, Public: &PublicPlaceDetails{}},
		},
		{
			name:    "unknown type",
			place:   Place{ID: 4, Type: "shop", Business: &BusinessDetails{}},
			wantErr: true,
		},
		{
			name:    "missing payload",
			place:   Place{ID: 5, Type: PlaceTypeEvent},
			wantErr: true,
		},
		{
			name:    "payload does not match type",
			place:   Place{ID: 6, Type: PlaceTypeEvent, Public: &PublicPlaceDetails{}},
			wantErr: true,
		},
		{
			name:    "two payloads",
			place:   Place{ID: 7, Type: PlaceTypeBusiness, Business: &BusinessDetails{}, Public: &PublicPlaceDetails{}},
			wantErr: true,
		},
		{
			name:    "invalid coordinates",
			place:   Place{ID: 8, Type: PlaceTypePublic, Location: Point{Lat: 120}, Public: &PublicPlaceDetails{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.place.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlace_Temporality(t *testing.T) {
	business := Place{Type: PlaceTypeBusiness}
	event := Place{Type: PlaceTypeEvent}
	public := Place{Type: PlaceTypePublic}

	assert.True(t, business.IsPermanent())
	assert.False(t, business.IsEventual())
	assert.True(t, event.IsEventual())
	assert.False(t, event.IsPermanent())
	assert.True(t, public.IsPermanent())
}

func TestPlace_OpeningHours(t *testing.T) {
	business := Place{Type: PlaceTypeBusiness, Business: &BusinessDetails{OpeningHours: "9-18"}}
	public := Place{Type: PlaceTypePublic, Public: &PublicPlaceDetails{OpeningHours: "24h"}}
	event := Place{Type: PlaceTypeEvent, Event: &EventDetails{}}

	assert.Equal(t, "9-18", business.OpeningHours())
	assert.Equal(t, "24h", public.OpeningHours())
	assert.Equal(t, "", event.OpeningHours())
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	b, ok := BoundsOf([]Point{{Lat: -12.07, Lon: -75.21}, {Lat: -12.06, Lon: -75.2}, {Lat: -12.065, Lon: -75.203}})
	assert.True(t, ok)
	assert.Equal(t, BoundingBox{MinLat: -12.07, MinLon: -75.21, MaxLat: -12.06, MaxLon: -75.2}, b)
}
