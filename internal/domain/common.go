package domain

type Point struct {
	Lat float64 `json:"lat" yaml:"lat" db:"lat"`
	Lon float64 `json:"lon" yaml:"lon" db:"lon"`
}

// Valid проверяет, что координаты лежат в допустимых диапазонах
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Extend расширяет bbox так, чтобы он включал точку p
func (b BoundingBox) Extend(p Point) BoundingBox {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
	return b
}

// BoundsOf возвращает bbox набора точек. ok=false для пустого набора.
func BoundsOf(points []Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLon: points[0].Lon,
		MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b, true
}
