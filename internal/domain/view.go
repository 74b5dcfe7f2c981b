package domain

import "fmt"

// View - способ отображения списка мест
type View string

const (
	ViewReels View = "reels"
	ViewList  View = "list"
	ViewMap   View = "map"
)

// DefaultView - вид по умолчанию (мобильное приложение)
const DefaultView = ViewReels

// ParseView разбирает вид. Пустое значение - DefaultView.
func ParseView(raw string) (View, error) {
	switch View(raw) {
	case "":
		return DefaultView, nil
	case ViewReels, ViewList, ViewMap:
		return View(raw), nil
	}
	return "", fmt.Errorf("unknown view %q", raw)
}

// Viewport - начальная камера виджета карты
type Viewport struct {
	Center Point   `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// MapMarker - маркер места для виджета карты
type MapMarker struct {
	ID    int64     `json:"id"`
	Lat   float64   `json:"lat"`
	Lon   float64   `json:"lon"`
	Label string    `json:"label"`
	Type  PlaceType `json:"type"`
}

func MarkerFor(p *Place) MapMarker {
	return MapMarker{
		ID:    p.ID,
		Lat:   p.Location.Lat,
		Lon:   p.Location.Lon,
		Label: p.Name,
		Type:  p.Type,
	}
}
