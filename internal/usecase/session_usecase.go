package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/pkg/validator"
	"github.com/vivemap/internal/usecase/dto"
)

// SessionUseCase - контейнер состояния фильтров: чтение, редьюсер, запись целиком
type SessionUseCase struct {
	sessionRepo  repository.SessionRepository
	statsRepo    repository.SearchStatsRepository
	streamRepo   repository.StreamRepository
	taxonomyRepo repository.TaxonomyRepository
	presetRepo   repository.PresetRepository
	places       *PlaceUseCase
	logger       *zap.Logger
	sessionTTL   time.Duration
	recentLimit  int
	now          func() time.Time
}

// NewSessionUseCase - создание нового SessionUseCase
func NewSessionUseCase(
	sessionRepo repository.SessionRepository,
	statsRepo repository.SearchStatsRepository,
	streamRepo repository.StreamRepository,
	taxonomyRepo repository.TaxonomyRepository,
	presetRepo repository.PresetRepository,
	places *PlaceUseCase,
	logger *zap.Logger,
	sessionTTL time.Duration,
	recentLimit int,
) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo:  sessionRepo,
		statsRepo:    statsRepo,
		streamRepo:   streamRepo,
		taxonomyRepo: taxonomyRepo,
		presetRepo:   presetRepo,
		places:       places,
		logger:       logger,
		sessionTTL:   sessionTTL,
		recentLimit:  recentLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create - новая сессия с пустым состоянием
func (uc *SessionUseCase) Create(ctx context.Context) (*dto.SessionResponse, error) {
	now := uc.now()
	session := &domain.FilterSession{
		ID:        uuid.New(),
		State:     domain.DefaultFilterState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.sessionRepo.Save(ctx, session, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to create session", zap.Error(err))
		return nil, errors.ErrCacheError
	}

	uc.logger.Info("Session created", zap.String("session_id", session.ID.String()))
	return toSessionResponse(session), nil
}

// Get - состояние сессии
func (uc *SessionUseCase) Get(ctx context.Context, rawID string) (*dto.SessionResponse, error) {
	session, err := uc.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Dispatch проверяет действие, применяет Reduce и сохраняет новое состояние целиком.
// Недавние поиски и событие в стрим - best effort, их ошибки только логируются.
func (uc *SessionUseCase) Dispatch(ctx context.Context, rawID string, req dto.ActionRequest) (*dto.SessionResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := uc.load(ctx, rawID)
	if err != nil {
		return nil, err
	}

	action, err := uc.resolveAction(req)
	if err != nil {
		return nil, err
	}
	if err := uc.checkTaxonomy(session.State, action); err != nil {
		return nil, err
	}

	next := *session
	next.State = domain.Reduce(session.State, action)
	next.UpdatedAt = uc.now()

	if err := uc.sessionRepo.Save(ctx, &next, uc.sessionTTL); err != nil {
		uc.logger.Error("Failed to save session",
			zap.String("session_id", next.ID.String()),
			zap.Error(err))
		return nil, errors.ErrCacheError
	}

	summary := domain.FilterSummary(next.State)

	if !next.State.IsDefault() {
		if err := uc.statsRepo.PushRecent(ctx, next.ID, next.State, uc.recentLimit); err != nil {
			uc.logger.Warn("Failed to record recent search",
				zap.String("session_id", next.ID.String()),
				zap.Error(err))
		}
	}

	event := &domain.FilterAppliedEvent{
		SessionID: next.ID,
		Action:    action.Type,
		State:     next.State,
		Summary:   summary,
		AppliedAt: next.UpdatedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamFiltersApplied, event); err != nil {
		uc.logger.Warn("Failed to publish filter event",
			zap.String("session_id", next.ID.String()),
			zap.Error(err))
	}

	uc.logger.Debug("Filter action applied",
		zap.String("session_id", next.ID.String()),
		zap.String("action", string(action.Type)),
		zap.String("summary", summary))

	return toSessionResponse(&next), nil
}

// Places - отфильтрованные места по состоянию сессии
func (uc *SessionUseCase) Places(ctx context.Context, rawID, rawView string, origin *domain.Point) (*dto.PlacesResponse, error) {
	view, err := domain.ParseView(rawView)
	if err != nil {
		return nil, errors.ErrInvalidView
	}
	if origin != nil && !origin.Valid() {
		return nil, errors.ErrInvalidCoordinates
	}

	session, err := uc.load(ctx, rawID)
	if err != nil {
		return nil, err
	}

	return uc.places.Browse(ctx, session.State, view, origin)
}

// Recent - недавние поиски сессии
func (uc *SessionUseCase) Recent(ctx context.Context, rawID string) (*dto.RecentSearchesResponse, error) {
	session, err := uc.load(ctx, rawID)
	if err != nil {
		return nil, err
	}

	states, err := uc.statsRepo.Recent(ctx, session.ID)
	if err != nil {
		return nil, errors.ErrCacheError
	}

	resp := &dto.RecentSearchesResponse{Searches: make([]dto.RecentSearch, 0, len(states))}
	for _, s := range states {
		resp.Searches = append(resp.Searches, dto.RecentSearch{
			Summary: domain.FilterSummary(s),
			Filters: s,
		})
	}
	return resp, nil
}

func (uc *SessionUseCase) load(ctx context.Context, rawID string) (*domain.FilterSession, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.ErrInvalidSessionID
	}

	session, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) {
			return nil, errors.ErrSessionNotFound
		}
		uc.logger.Error("Failed to load session", zap.String("session_id", rawID), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return session, nil
}

// resolveAction подставляет фильтры пресета по preset_id
func (uc *SessionUseCase) resolveAction(req dto.ActionRequest) (domain.Action, error) {
	action := req.Action()

	if action.Type == domain.ActionApplyPreset && req.PresetID != "" {
		found := false
		for _, p := range uc.presetRepo.Presets() {
			if p.ID == req.PresetID {
				patch := p.Filter
				action.Patch = &patch
				found = true
				break
			}
		}
		if !found {
			return domain.Action{}, errors.ErrInvalidAction.WithDetails(map[string]interface{}{
				"preset_id": "unknown preset",
			})
		}
	}

	if err := action.Validate(); err != nil {
		return domain.Action{}, errors.ErrInvalidAction.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return action, nil
}

// checkTaxonomy отклоняет действия, ссылающиеся на неизвестные категории и подкатегории
func (uc *SessionUseCase) checkTaxonomy(state domain.FilterState, a domain.Action) error {
	tax := uc.taxonomyRepo.Taxonomy()

	switch a.Type {
	case domain.ActionToggleCategory:
		if _, ok := tax.Category(a.Value); !ok {
			return errors.ErrCategoryNotFound.WithDetails(map[string]interface{}{"category": a.Value})
		}

	case domain.ActionToggleSubcategory:
		if !tax.HasSubcategory(state.Category, a.Value) {
			return errors.ErrInvalidSubcategory.WithDetails(map[string]interface{}{
				"category":    state.Category,
				"subcategory": a.Value,
			})
		}

	case domain.ActionToggleTimeFrame:
		if !domain.IsValidTimeFrame(a.Value) {
			return errors.ErrInvalidTimeFrame.WithDetails(map[string]interface{}{"time_frame": a.Value})
		}

	case domain.ActionApplyPreset:
		p := a.Patch
		category := state.Category
		if p.Category != nil {
			category = *p.Category
			if category != "" {
				if _, ok := tax.Category(category); !ok {
					return errors.ErrCategoryNotFound.WithDetails(map[string]interface{}{"category": category})
				}
			}
		}
		if category != "" {
			for _, sc := range p.Subcategories {
				if !tax.HasSubcategory(category, sc) {
					return errors.ErrInvalidSubcategory.WithDetails(map[string]interface{}{
						"category":    category,
						"subcategory": sc,
					})
				}
			}
		}
		if p.TimeFrame != nil && *p.TimeFrame != "" && !domain.IsValidTimeFrame(*p.TimeFrame) {
			return errors.ErrInvalidTimeFrame.WithDetails(map[string]interface{}{"time_frame": *p.TimeFrame})
		}
	}

	return nil
}

func toSessionResponse(s *domain.FilterSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:        s.ID,
		State:     s.State,
		Summary:   domain.FilterSummary(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
