package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/pkg/validator"
	"github.com/vivemap/internal/usecase/dto"
)

// MapOptions - параметры виджета карты
type MapOptions struct {
	AccessToken string
	Center      domain.Point
	Zoom        float64
	PlaceZoom   float64
}

// DefaultViewport - начальная камера карты
func (o MapOptions) DefaultViewport() domain.Viewport {
	return domain.Viewport{Center: o.Center, Zoom: o.Zoom}
}

// PlaceUseCase - фильтрация каталога и его представления (reels, list, map)
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	mapOpts   MapOptions
}

// NewPlaceUseCase - cacheRepo может быть nil, тогда каталог всегда читается из источника
func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	mapOpts MapOptions,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		mapOpts:   mapOpts,
	}
}

// ListPlaces - фильтрация по параметрам запроса (без сессии)
func (uc *PlaceUseCase) ListPlaces(ctx context.Context, q dto.PlacesQuery) (*dto.PlacesResponse, error) {
	view, err := domain.ParseView(q.View)
	if err != nil {
		return nil, errors.ErrInvalidView
	}
	if err := validator.Validate(q); err != nil {
		return nil, err
	}
	if (q.Lat == nil) != (q.Lon == nil) {
		return nil, errors.ErrInvalidCoordinates
	}

	return uc.Browse(ctx, q.FilterState(), view, q.Origin())
}

// Browse фильтрует каталог по state и строит представление view
func (uc *PlaceUseCase) Browse(
	ctx context.Context,
	state domain.FilterState,
	view domain.View,
	origin *domain.Point,
) (*dto.PlacesResponse, error) {
	start := time.Now()

	places, err := uc.loadPlaces(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterPlaces(places, state)

	resp := &dto.PlacesResponse{
		View:    view,
		Summary: domain.FilterSummary(state),
		Filters: state,
		Total:   len(filtered),
	}

	switch view {
	case domain.ViewList:
		resp.Places = make([]dto.PlaceCard, 0, len(filtered))
		for i := range filtered {
			resp.Places = append(resp.Places, dto.ToPlaceCard(&filtered[i], origin))
		}
	case domain.ViewMap:
		resp.Markers = make([]domain.MapMarker, 0, len(filtered))
		points := make([]domain.Point, 0, len(filtered))
		for i := range filtered {
			resp.Markers = append(resp.Markers, domain.MarkerFor(&filtered[i]))
			points = append(points, filtered[i].Location)
		}
		viewport := uc.viewportFor(points)
		resp.Viewport = &viewport
		if bounds, ok := domain.BoundsOf(points); ok {
			resp.Bounds = &bounds
		}
	default:
		resp.Items = make([]dto.ReelItem, 0, len(filtered))
		for i := range filtered {
			resp.Items = append(resp.Items, dto.ToReelItem(&filtered[i]))
		}
	}

	uc.logger.Debug("Places filtered",
		zap.String("view", string(view)),
		zap.String("summary", resp.Summary),
		zap.Int("total", len(places)),
		zap.Int("matched", resp.Total),
		zap.Duration("took", time.Since(start)),
	)

	return resp, nil
}

// viewportFor: нет точек - камера по умолчанию, одна - фокус на месте, иначе центр bbox
func (uc *PlaceUseCase) viewportFor(points []domain.Point) domain.Viewport {
	switch len(points) {
	case 0:
		return uc.mapOpts.DefaultViewport()
	case 1:
		return domain.Viewport{Center: points[0], Zoom: uc.mapOpts.PlaceZoom}
	}

	b, _ := domain.BoundsOf(points)
	return domain.Viewport{
		Center: domain.Point{
			Lat: (b.MinLat + b.MaxLat) / 2,
			Lon: (b.MinLon + b.MaxLon) / 2,
		},
		Zoom: uc.mapOpts.Zoom,
	}
}

// Summary - метка фильтров для параметров запроса
func (uc *PlaceUseCase) Summary(q dto.PlacesQuery) (*dto.SummaryResponse, error) {
	if err := validator.Validate(q); err != nil {
		return nil, err
	}
	state := q.FilterState()
	return &dto.SummaryResponse{
		Summary: domain.FilterSummary(state),
		Filters: state,
	}, nil
}

// GetPlace - место целиком (детальная карточка)
func (uc *PlaceUseCase) GetPlace(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		if !stderrors.Is(err, errors.ErrPlaceNotFound) {
			uc.logger.Error("Failed to get place", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return place, nil
}

// PlaceMap - маркер и камера, сфокусированная на месте
func (uc *PlaceUseCase) PlaceMap(ctx context.Context, id int64) (*dto.PlaceMapResponse, error) {
	place, err := uc.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PlaceMapResponse{
		Marker:   domain.MarkerFor(place),
		Viewport: domain.Viewport{Center: place.Location, Zoom: uc.mapOpts.PlaceZoom},
	}, nil
}

// MapConfig - токен виджета и камера по умолчанию
func (uc *PlaceUseCase) MapConfig() *dto.MapConfigResponse {
	return &dto.MapConfigResponse{
		AccessToken: uc.mapOpts.AccessToken,
		Available:   uc.mapOpts.AccessToken != "",
		Viewport:    uc.mapOpts.DefaultViewport(),
	}
}

// loadPlaces - cache-aside над источником каталога. Ошибки кеша не фатальны.
func (uc *PlaceUseCase) loadPlaces(ctx context.Context) ([]domain.Place, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPlaces(ctx)
		if err != nil {
			uc.logger.Warn("Catalog cache read failed, using source", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	places, err := uc.placeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load places", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPlaces(ctx, places, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache catalog", zap.Error(err))
		}
	}

	return places, nil
}

// InvalidateCache сбрасывает кеш каталога (после seed)
func (uc *PlaceUseCase) InvalidateCache(ctx context.Context) error {
	if uc.cacheRepo == nil {
		return nil
	}
	return uc.cacheRepo.Delete(ctx, domain.CacheKeyCatalogPlaces)
}
