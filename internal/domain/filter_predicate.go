package domain

// Matches проверяет, что место удовлетворяет всем активным фильтрам состояния.
// Promotions и TimeFrame хранятся в состоянии, но не проверяются: у мест нет ни признака
// акции, ни расписания.
func Matches(p *Place, s FilterState) bool {
	if s.Category != "" && p.Category != s.Category {
		return false
	}

	if len(s.Subcategories) > 0 && !s.HasSubcategory(p.Subcategory) {
		return false
	}

	switch {
	case s.ShowEventual && s.ShowPermanent:
		// запрошены обе - без фильтрации
	case s.ShowEventual:
		if !p.IsEventual() {
			return false
		}
	case s.ShowPermanent:
		if !p.IsPermanent() {
			return false
		}
	}

	if s.ShowFreeOnly && !p.IsFree {
		return false
	}

	return true
}

// FilterPlaces возвращает подходящие места, сохраняя их исходный порядок.
// Пустой результат - корректный ответ.
func FilterPlaces(places []Place, s FilterState) []Place {
	out := make([]Place, 0, len(places))
	for i := range places {
		if Matches(&places[i], s) {
			out = append(out, places[i])
		}
	}
	return out
}
