package domain

// Категории таксономии
const (
	CategoryEvents        = "eventos"
	CategoryGastronomy    = "gastronomia"
	CategoryCulture       = "cultura"
	CategoryAdventure     = "aventura"
	CategoryEducation     = "educacion"
	CategoryWellness      = "bienestar"
	CategoryHealth        = "salud"
	CategoryPets          = "mascotas"
	CategoryEntertainment = "entretenimiento"
	CategoryShopping      = "compras"
	CategoryHome          = "hogar"
	CategoryCars          = "autos"
)

// Временные рамки фильтра
const (
	TimeFrameToday     = "Hoy"
	TimeFrameWeekend   = "Fin de semana"
	TimeFrameThisWeek  = "Esta semana"
	TimeFrameThisMonth = "Este mes"
)

// Подписи для FilterSummary
const (
	SummaryEventualAndPermanent = "Eventuales y Permanentes"
	SummaryEventual             = "Eventuales"
	SummaryPermanent            = "Permanentes"
	SummaryFree                 = "Gratis"
	SummaryPromotions           = "Promociones"

	// SummaryFallback - подпись, когда не выбрано ни одного фильтра
	SummaryFallback = "Huancayo - Entretenimiento"
)

// ValidTimeFrames возвращает временные рамки в порядке отображения
func ValidTimeFrames() []string {
	return []string{
		TimeFrameToday,
		TimeFrameWeekend,
		TimeFrameThisWeek,
		TimeFrameThisMonth,
	}
}

// IsValidTimeFrame проверяет, что рамка входит в ValidTimeFrames
func IsValidTimeFrame(timeFrame string) bool {
	for _, tf := range ValidTimeFrames() {
		if tf == timeFrame {
			return true
		}
	}
	return false
}
