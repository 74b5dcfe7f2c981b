package domain

import "fmt"

// Flag - имя одного из независимых переключателей FilterState
type Flag string

const (
	FlagEventual   Flag = "eventual"
	FlagPermanent  Flag = "permanent"
	FlagFreeOnly   Flag = "free_only"
	FlagPromotions Flag = "promotions"
)

// Valid проверяет, что флаг известен
func (f Flag) Valid() bool {
	switch f {
	case FlagEventual, FlagPermanent, FlagFreeOnly, FlagPromotions:
		return true
	}
	return false
}

// FilterState - выбранные пользователем фильтры поиска.
//
// Пустые Category и TimeFrame означают "не выбрано". Subcategories - множество, порядок
// вставки хранится только для отображения. Выбор другой категории очищает подкатегории.
// Состояние - значение: Reduce никогда не меняет входной FilterState.
type FilterState struct {
	Category       string   `json:"category,omitempty" yaml:"category"`
	Subcategories  []string `json:"subcategories" yaml:"subcategories"`
	TimeFrame      string   `json:"time_frame,omitempty" yaml:"time_frame"`
	ShowEventual   bool     `json:"show_eventual" yaml:"show_eventual"`
	ShowPermanent  bool     `json:"show_permanent" yaml:"show_permanent"`
	ShowFreeOnly   bool     `json:"show_free_only" yaml:"show_free_only"`
	ShowPromotions bool     `json:"show_promotions" yaml:"show_promotions"`
}

// DefaultFilterState - начальное состояние, ничего не выбрано
func DefaultFilterState() FilterState {
	return FilterState{Subcategories: []string{}}
}

// Clone - глубокая копия, срез подкатегорий не разделяется
func (s FilterState) Clone() FilterState {
	out := s
	out.Subcategories = make([]string, len(s.Subcategories))
	copy(out.Subcategories, s.Subcategories)
	return out
}

func (s FilterState) HasSubcategory(id string) bool {
	for _, sc := range s.Subcategories {
		if sc == id {
			return true
		}
	}
	return false
}

// IsDefault - ни один фильтр не активен
func (s FilterState) IsDefault() bool {
	return s.Category == "" &&
		len(s.Subcategories) == 0 &&
		s.TimeFrame == "" &&
		!s.ShowEventual &&
		!s.ShowPermanent &&
		!s.ShowFreeOnly &&
		!s.ShowPromotions
}

func (s FilterState) Flag(f Flag) bool {
	switch f {
	case FlagEventual:
		return s.ShowEventual
	case FlagPermanent:
		return s.ShowPermanent
	case FlagFreeOnly:
		return s.ShowFreeOnly
	case FlagPromotions:
		return s.ShowPromotions
	}
	return false
}

func (s *FilterState) setFlag(f Flag, v bool) {
	switch f {
	case FlagEventual:
		s.ShowEventual = v
	case FlagPermanent:
		s.ShowPermanent = v
	case FlagFreeOnly:
		s.ShowFreeOnly = v
	case FlagPromotions:
		s.ShowPromotions = v
	}
}

// ActionType - тип действия над FilterState
type ActionType string

const (
	ActionToggleCategory    ActionType = "toggle_category"
	ActionToggleSubcategory ActionType = "toggle_subcategory"
	ActionToggleTimeFrame   ActionType = "toggle_time_frame"
	ActionToggleFlag        ActionType = "toggle_flag"
	ActionSetFlag           ActionType = "set_flag"
	ActionApplyPreset       ActionType = "apply_preset"
	ActionReset             ActionType = "reset"
)

// Action - действие пользователя, применяемое Reduce
type Action struct {
	Type    ActionType   `json:"type"`
	Value   string       `json:"value,omitempty"`
	Flag    Flag         `json:"flag,omitempty"`
	Enabled bool         `json:"enabled,omitempty"`
	Patch   *FilterPatch `json:"patch,omitempty"`
}

// FilterPatch - частичный FilterState. Поля nil при слиянии не трогаются.
type FilterPatch struct {
	Category       *string  `json:"category,omitempty" yaml:"category"`
	Subcategories  []string `json:"subcategories,omitempty" yaml:"subcategories"`
	TimeFrame      *string  `json:"time_frame,omitempty" yaml:"time_frame"`
	ShowEventual   *bool    `json:"show_eventual,omitempty" yaml:"show_eventual"`
	ShowPermanent  *bool    `json:"show_permanent,omitempty" yaml:"show_permanent"`
	ShowFreeOnly   *bool    `json:"show_free_only,omitempty" yaml:"show_free_only"`
	ShowPromotions *bool    `json:"show_promotions,omitempty" yaml:"show_promotions"`
}

// Validate проверяет, что у действия есть всё нужное для его типа
func (a Action) Validate() error {
	switch a.Type {
	case ActionToggleCategory, ActionToggleSubcategory, ActionToggleTimeFrame:
		if a.Value == "" {
			return fmt.Errorf("action %s requires a value", a.Type)
		}
	case ActionToggleFlag, ActionSetFlag:
		if !a.Flag.Valid() {
			return fmt.Errorf("action %s: unknown flag %q", a.Type, a.Flag)
		}
	case ActionApplyPreset:
		if a.Patch == nil {
			return fmt.Errorf("action %s requires a patch", a.Type)
		}
	case ActionReset:
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}

// Reduce применяет действие и возвращает новое состояние. s не изменяется, результат
// не разделяет s.Subcategories. Неизвестное действие возвращает копию без изменений.
func Reduce(s FilterState, a Action) FilterState {
	next := s.Clone()

	switch a.Type {
	case ActionToggleCategory:
		if next.Category == a.Value {
			next.Category = ""
		} else {
			next.Category = a.Value
		}
		next.Subcategories = []string{}

	case ActionToggleSubcategory:
		// подкатегории существуют только внутри выбранной категории
		if next.Category == "" {
			break
		}
		if next.HasSubcategory(a.Value) {
			kept := make([]string, 0, len(next.Subcategories))
			for _, sc := range next.Subcategories {
				if sc != a.Value {
					kept = append(kept, sc)
				}
			}
			next.Subcategories = kept
		} else {
			next.Subcategories = append(next.Subcategories, a.Value)
		}

	case ActionToggleTimeFrame:
		if next.TimeFrame == a.Value {
			next.TimeFrame = ""
		} else {
			next.TimeFrame = a.Value
		}

	case ActionToggleFlag:
		next.setFlag(a.Flag, !next.Flag(a.Flag))

	case ActionSetFlag:
		next.setFlag(a.Flag, a.Enabled)

	case ActionApplyPreset:
		if a.Patch != nil {
			next = next.Merge(*a.Patch)
		}

	case ActionReset:
		next = DefaultFilterState()
	}

	return next
}

// Merge накладывает непустые поля патча. Патч с категорией заменяет подкатегории
// своим списком (возможно пустым).
func (s FilterState) Merge(p FilterPatch) FilterState {
	next := s.Clone()

	if p.Category != nil {
		next.Category = *p.Category
		next.Subcategories = make([]string, 0, len(p.Subcategories))
		for _, sc := range p.Subcategories {
			if !next.HasSubcategory(sc) {
				next.Subcategories = append(next.Subcategories, sc)
			}
		}
	} else if p.Subcategories != nil && next.Category != "" {
		next.Subcategories = make([]string, 0, len(p.Subcategories))
		for _, sc := range p.Subcategories {
			if !next.HasSubcategory(sc) {
				next.Subcategories = append(next.Subcategories, sc)
			}
		}
	}
	if next.Category == "" {
		next.Subcategories = []string{}
	}

	if p.TimeFrame != nil {
		next.TimeFrame = *p.TimeFrame
	}
	if p.ShowEventual != nil {
		next.ShowEventual = *p.ShowEventual
	}
	if p.ShowPermanent != nil {
		next.ShowPermanent = *p.ShowPermanent
	}
	if p.ShowFreeOnly != nil {
		next.ShowFreeOnly = *p.ShowFreeOnly
	}
	if p.ShowPromotions != nil {
		next.ShowPromotions = *p.ShowPromotions
	}

	return next
}
