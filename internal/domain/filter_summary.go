package domain

import "strings"

// FilterSummary собирает подпись активных фильтров в фиксированном порядке: категория,
// подкатегории, рамка, временность, бесплатно, акции. Без фильтров - SummaryFallback.
func FilterSummary(s FilterState) string {
	parts := make([]string, 0, 6)

	if s.Category != "" {
		parts = append(parts, s.Category)
	}
	if len(s.Subcategories) > 0 {
		parts = append(parts, strings.Join(s.Subcategories, ", "))
	}
	if s.TimeFrame != "" {
		parts = append(parts, s.TimeFrame)
	}

	switch {
	case s.ShowEventual && s.ShowPermanent:
		parts = append(parts, SummaryEventualAndPermanent)
	case s.ShowEventual:
		parts = append(parts, SummaryEventual)
	case s.ShowPermanent:
		parts = append(parts, SummaryPermanent)
	}

	if s.ShowFreeOnly {
		parts = append(parts, SummaryFree)
	}
	if s.ShowPromotions {
		parts = append(parts, SummaryPromotions)
	}

	if len(parts) == 0 {
		return SummaryFallback
	}
	return strings.Join(parts, " - ")
}
