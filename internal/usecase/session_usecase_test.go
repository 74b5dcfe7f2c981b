package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	apperrors "github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/repository/static"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/usecase/dto"
)

const testSessionTTL = time.Hour

type SessionUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	sessionRepo *MockSessionRepository
	statsRepo   *MockSearchStatsRepository
	streamRepo  *MockStreamRepository
	uc          *usecase.SessionUseCase
	session     *domain.FilterSession
}

func (s *SessionUseCaseTestSuite) SetupTest() {
	catalog, err := static.Load(zap.NewNop())
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.sessionRepo = &MockSessionRepository{}
	s.statsRepo = &MockSearchStatsRepository{}
	s.streamRepo = &MockStreamRepository{}

	places := usecase.NewPlaceUseCase(catalog, nil, zap.NewNop(), time.Minute, testMapOptions)
	s.uc = usecase.NewSessionUseCase(
		s.sessionRepo, s.statsRepo, s.streamRepo, catalog, catalog, places,
		zap.NewNop(), testSessionTTL, 5,
	)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.session = &domain.FilterSession{
		ID:        uuid.New(),
		State:     domain.DefaultFilterState(),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (s *SessionUseCaseTestSuite) withState(state domain.FilterState) {
	s.session.State = state
	s.sessionRepo.On("Get", s.ctx, s.session.ID).Return(s.session, nil)
}

func (s *SessionUseCaseTestSuite) TestCreate() {
	s.sessionRepo.On("Save", s.ctx, mock.AnythingOfType("*domain.FilterSession"), testSessionTTL).Return(nil).Once()

	resp, err := s.uc.Create(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, resp.ID)
	s.True(resp.State.IsDefault())
	s.Equal(domain.SummaryFallback, resp.Summary)
	s.sessionRepo.AssertExpectations(s.T())
}

func (s *SessionUseCaseTestSuite) TestCreate_SaveFails() {
	s.sessionRepo.On("Save", s.ctx, mock.Anything, testSessionTTL).Return(errors.New("redis down")).Once()

	_, err := s.uc.Create(s.ctx)
	s.ErrorIs(err, apperrors.ErrCacheError)
}

func (s *SessionUseCaseTestSuite) TestGet() {
	s.withState(domain.FilterState{Category: domain.CategoryCulture, Subcategories: []string{}})

	resp, err := s.uc.Get(s.ctx, s.session.ID.String())
	s.Require().NoError(err)
	s.Equal("cultura", resp.Summary)
	s.Equal(s.session.CreatedAt, resp.CreatedAt)
}

func (s *SessionUseCaseTestSuite) TestGet_Errors() {
	_, err := s.uc.Get(s.ctx, "not-a-uuid")
	s.ErrorIs(err, apperrors.ErrInvalidSessionID)

	missing := uuid.New()
	s.sessionRepo.On("Get", s.ctx, missing).Return(nil, apperrors.ErrSessionNotFound).Once()
	_, err = s.uc.Get(s.ctx, missing.String())
	s.ErrorIs(err, apperrors.ErrSessionNotFound)

	broken := uuid.New()
	s.sessionRepo.On("Get", s.ctx, broken).Return(nil, errors.New("connection refused")).Once()
	_, err = s.uc.Get(s.ctx, broken.String())
	s.ErrorIs(err, apperrors.ErrCacheError)
}

func (s *SessionUseCaseTestSuite) TestDispatch_ToggleCategory() {
	s.withState(domain.DefaultFilterState())

	expected := domain.FilterState{Category: domain.CategoryEvents, Subcategories: []string{}}
	s.sessionRepo.On("Save", s.ctx, mock.MatchedBy(func(fs *domain.FilterSession) bool {
		return fs.ID == s.session.ID && fs.State.Category == domain.CategoryEvents
	}), testSessionTTL).Return(nil).Once()
	s.statsRepo.On("PushRecent", s.ctx, s.session.ID, expected, 5).Return(nil).Once()
	s.streamRepo.On("PublishToStream", s.ctx, domain.StreamFiltersApplied, mock.MatchedBy(func(e *domain.FilterAppliedEvent) bool {
		return e.SessionID == s.session.ID && e.Action == domain.ActionToggleCategory && e.Summary == "eventos"
	})).Return(nil).Once()

	resp, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type:  string(domain.ActionToggleCategory),
		Value: domain.CategoryEvents,
	})
	s.Require().NoError(err)

	s.Equal("eventos", resp.Summary)
	s.Equal(domain.CategoryEvents, resp.State.Category)
	s.True(resp.UpdatedAt.After(s.session.CreatedAt))
	s.Equal(domain.DefaultFilterState(), s.session.State)

	s.sessionRepo.AssertExpectations(s.T())
	s.statsRepo.AssertExpectations(s.T())
	s.streamRepo.AssertExpectations(s.T())
}

func (s *SessionUseCaseTestSuite) TestDispatch_ResetSkipsRecent() {
	s.withState(domain.FilterState{Category: domain.CategoryEvents, Subcategories: []string{"Conciertos"}, ShowFreeOnly: true})

	s.sessionRepo.On("Save", s.ctx, mock.Anything, testSessionTTL).Return(nil).Once()
	s.streamRepo.On("PublishToStream", s.ctx, domain.StreamFiltersApplied, mock.Anything).Return(nil).Once()

	resp, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{Type: string(domain.ActionReset)})
	s.Require().NoError(err)

	s.True(resp.State.IsDefault())
	s.Equal(domain.SummaryFallback, resp.Summary)
	s.statsRepo.AssertNotCalled(s.T(), "PushRecent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SessionUseCaseTestSuite) TestDispatch_SideEffectFailuresAreIgnored() {
	s.withState(domain.DefaultFilterState())

	s.sessionRepo.On("Save", s.ctx, mock.Anything, testSessionTTL).Return(nil).Once()
	s.statsRepo.On("PushRecent", s.ctx, s.session.ID, mock.Anything, 5).Return(errors.New("redis down")).Once()
	s.streamRepo.On("PublishToStream", s.ctx, domain.StreamFiltersApplied, mock.Anything).Return(errors.New("redis down")).Once()

	resp, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type: string(domain.ActionToggleFlag),
		Flag: string(domain.FlagFreeOnly),
	})
	s.Require().NoError(err)
	s.True(resp.State.ShowFreeOnly)
	s.Equal(domain.SummaryFree, resp.Summary)
}

func (s *SessionUseCaseTestSuite) TestDispatch_SaveFails() {
	s.withState(domain.DefaultFilterState())
	s.sessionRepo.On("Save", s.ctx, mock.Anything, testSessionTTL).Return(errors.New("redis down")).Once()

	_, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type:  string(domain.ActionToggleTimeFrame),
		Value: domain.TimeFrameToday,
	})
	s.ErrorIs(err, apperrors.ErrCacheError)
	s.streamRepo.AssertNotCalled(s.T(), "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SessionUseCaseTestSuite) TestDispatch_ApplyPresetByID() {
	s.withState(domain.FilterState{Category: domain.CategoryCulture, Subcategories: []string{}, ShowFreeOnly: true})

	expected := domain.FilterState{
		Category:      domain.CategoryEvents,
		Subcategories: []string{"Festivales", "Conciertos"},
		TimeFrame:     domain.TimeFrameWeekend,
		ShowFreeOnly:  true,
	}
	s.sessionRepo.On("Save", s.ctx, mock.Anything, testSessionTTL).Return(nil).Once()
	s.statsRepo.On("PushRecent", s.ctx, s.session.ID, expected, 5).Return(nil).Once()
	s.streamRepo.On("PublishToStream", s.ctx, domain.StreamFiltersApplied, mock.Anything).Return(nil).Once()

	resp, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type:     string(domain.ActionApplyPreset),
		PresetID: "fin-de-semana",
	})
	s.Require().NoError(err)
	s.Equal(expected, resp.State)
	s.Equal("eventos - Festivales, Conciertos - Fin de semana - Gratis", resp.Summary)
}

func (s *SessionUseCaseTestSuite) TestDispatch_Rejections() {
	s.withState(domain.FilterState{Category: domain.CategoryEvents, Subcategories: []string{}})

	tests := []struct {
		name string
		req  dto.ActionRequest
		want error
	}{
		{
			name: "unknown category",
			req:  dto.ActionRequest{Type: string(domain.ActionToggleCategory), Value: "deportes"},
			want: apperrors.ErrCategoryNotFound,
		},
		{
			name: "subcategory of another category",
			req:  dto.ActionRequest{Type: string(domain.ActionToggleSubcategory), Value: "Museos"},
			want: apperrors.ErrInvalidSubcategory,
		},
		{
			name: "unknown time frame",
			req:  dto.ActionRequest{Type: string(domain.ActionToggleTimeFrame), Value: "Mañana"},
			want: apperrors.ErrInvalidTimeFrame,
		},
		{
			name: "unknown preset",
			req:  dto.ActionRequest{Type: string(domain.ActionApplyPreset), PresetID: "nope"},
			want: apperrors.ErrInvalidAction,
		},
		{
			name: "preset without patch",
			req:  dto.ActionRequest{Type: string(domain.ActionApplyPreset)},
			want: apperrors.ErrInvalidAction,
		},
		{
			name: "toggle category without value",
			req:  dto.ActionRequest{Type: string(domain.ActionToggleCategory)},
			want: apperrors.ErrInvalidAction,
		},
		{
			name: "patch with unknown subcategory",
			req: dto.ActionRequest{Type: string(domain.ActionApplyPreset), Patch: &domain.FilterPatch{
				Category:      ptrString(domain.CategoryGastronomy),
				Subcategories: []string{"Conciertos"},
			}},
			want: apperrors.ErrInvalidSubcategory,
		},
		{
			name: "patch with unknown time frame",
			req: dto.ActionRequest{Type: string(domain.ActionApplyPreset), Patch: &domain.FilterPatch{
				TimeFrame: ptrString("Ayer"),
			}},
			want: apperrors.ErrInvalidTimeFrame,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), tt.req)
			s.ErrorIs(err, tt.want)
		})
	}

	s.sessionRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SessionUseCaseTestSuite) TestDispatch_SubcategoryWithoutCategory() {
	s.withState(domain.DefaultFilterState())

	_, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type:  string(domain.ActionToggleSubcategory),
		Value: "Conciertos",
	})
	s.ErrorIs(err, apperrors.ErrInvalidSubcategory)
}

func (s *SessionUseCaseTestSuite) TestDispatch_InvalidRequest() {
	_, err := s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{Type: "explode"})
	s.Error(err)

	_, err = s.uc.Dispatch(s.ctx, s.session.ID.String(), dto.ActionRequest{
		Type: string(domain.ActionToggleFlag),
		Flag: "vip",
	})
	s.Error(err)

	s.sessionRepo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *SessionUseCaseTestSuite) TestPlaces() {
	s.withState(domain.FilterState{Category: domain.CategoryHealth, Subcategories: []string{}})

	resp, err := s.uc.Places(s.ctx, s.session.ID.String(), "list", nil)
	s.Require().NoError(err)
	s.Require().Len(resp.Places, 1)
	s.Equal(int64(4), resp.Places[0].ID)

	_, err = s.uc.Places(s.ctx, s.session.ID.String(), "grid", nil)
	s.ErrorIs(err, apperrors.ErrInvalidView)

	_, err = s.uc.Places(s.ctx, s.session.ID.String(), "map", &domain.Point{Lat: 95})
	s.ErrorIs(err, apperrors.ErrInvalidCoordinates)
}

func (s *SessionUseCaseTestSuite) TestRecent() {
	s.withState(domain.DefaultFilterState())
	states := []domain.FilterState{
		{Category: domain.CategoryEvents, Subcategories: []string{"Festivales"}},
		{ShowFreeOnly: true, Subcategories: []string{}},
	}
	s.statsRepo.On("Recent", s.ctx, s.session.ID).Return(states, nil).Once()

	resp, err := s.uc.Recent(s.ctx, s.session.ID.String())
	s.Require().NoError(err)
	s.Require().Len(resp.Searches, 2)
	s.Equal("eventos - Festivales", resp.Searches[0].Summary)
	s.Equal("Gratis", resp.Searches[1].Summary)
}

func (s *SessionUseCaseTestSuite) TestRecent_StoreFails() {
	s.withState(domain.DefaultFilterState())
	s.statsRepo.On("Recent", s.ctx, s.session.ID).Return(nil, errors.New("redis down")).Once()

	_, err := s.uc.Recent(s.ctx, s.session.ID.String())
	s.ErrorIs(err, apperrors.ErrCacheError)
}

func TestSessionUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(SessionUseCaseTestSuite))
}

func TestSessionUseCase_DispatchSequence(t *testing.T) {
	catalog, err := static.Load(zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	session := &domain.FilterSession{ID: uuid.New(), State: domain.DefaultFilterState()}
	sessionRepo := &memorySessionRepository{sessions: map[uuid.UUID]domain.FilterSession{session.ID: *session}}
	statsRepo := &MockSearchStatsRepository{}
	streamRepo := &MockStreamRepository{}

	statsRepo.On("PushRecent", ctx, session.ID, mock.Anything, 5).Return(nil)
	streamRepo.On("PublishToStream", ctx, domain.StreamFiltersApplied, mock.Anything).Return(nil)

	places := usecase.NewPlaceUseCase(catalog, nil, zap.NewNop(), time.Minute, testMapOptions)
	uc := usecase.NewSessionUseCase(sessionRepo, statsRepo, streamRepo, catalog, catalog, places, zap.NewNop(), testSessionTTL, 5)

	id := session.ID.String()
	steps := []dto.ActionRequest{
		{Type: "toggle_category", Value: domain.CategoryEvents},
		{Type: "toggle_subcategory", Value: "Conciertos"},
		{Type: "toggle_time_frame", Value: domain.TimeFrameWeekend},
		{Type: "set_flag", Flag: "eventual", Enabled: true},
	}
	var resp *dto.SessionResponse
	for _, step := range steps {
		resp, err = uc.Dispatch(ctx, id, step)
		require.NoError(t, err)
	}

	assert.Equal(t, "eventos - Conciertos - Fin de semana - Eventuales", resp.Summary)

	placesResp, err := uc.Places(ctx, id, "", nil)
	require.NoError(t, err)
	require.Len(t, placesResp.Items, 1)
	assert.Equal(t, int64(2), placesResp.Items[0].ID)
}

// memorySessionRepository - SessionRepository в памяти
type memorySessionRepository struct {
	sessions map[uuid.UUID]domain.FilterSession
}

func (r *memorySessionRepository) Save(_ context.Context, session *domain.FilterSession, _ time.Duration) error {
	r.sessions[session.ID] = *session
	return nil
}

func (r *memorySessionRepository) Get(_ context.Context, id uuid.UUID) (*domain.FilterSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return &s, nil
}
