package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/pkg/errors"
)

const placeColumns = `
	id, type, name, description, address, lat, lon, video_url, logo_url,
	category, subcategory, is_free, photos, differential, rating,
	comments, social_media, details`

// placeRow - строка таблицы places. Payload варианта хранится в details (JSONB).
type placeRow struct {
	ID           int64          `db:"id"`
	Type         string         `db:"type"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Address      string         `db:"address"`
	Lat          float64        `db:"lat"`
	Lon          float64        `db:"lon"`
	VideoURL     string         `db:"video_url"`
	LogoURL      string         `db:"logo_url"`
	Category     string         `db:"category"`
	Subcategory  string         `db:"subcategory"`
	IsFree       bool           `db:"is_free"`
	Photos       pq.StringArray `db:"photos"`
	Differential string         `db:"differential"`
	Rating       float64        `db:"rating"`
	Comments     []byte         `db:"comments"`
	SocialMedia  []byte         `db:"social_media"`
	Details      []byte         `db:"details"`
}

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// NewPlaceWriter - запись каталога для команды seed
func NewPlaceWriter(db *DB) repository.PlaceWriter {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) List(ctx context.Context) ([]domain.Place, error) {
	query := `SELECT` + placeColumns + ` FROM places ORDER BY id`

	var rows []placeRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	places := make([]domain.Place, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			// битая строка не должна ронять весь каталог
			r.logger.Warn("Skipping invalid place row", zap.Int64("id", rows[i].ID), zap.Error(err))
			continue
		}
		places = append(places, *p)
	}

	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `SELECT` + placeColumns + ` FROM places WHERE id = $1`

	var row placeRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	p, err := row.toDomain()
	if err != nil {
		r.logger.Error("Invalid place row", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return p, nil
}

func (r *placeRepository) UpsertPlaces(ctx context.Context, places []domain.Place) (int, error) {
	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			video_url = EXCLUDED.video_url,
			logo_url = EXCLUDED.logo_url,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			is_free = EXCLUDED.is_free,
			photos = EXCLUDED.photos,
			differential = EXCLUDED.differential,
			rating = EXCLUDED.rating,
			comments = EXCLUDED.comments,
			social_media = EXCLUDED.social_media,
			details = EXCLUDED.details,
			updated_at = NOW()
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range places {
		row, err := rowFromDomain(&places[i])
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx, query,
			row.ID, row.Type, row.Name, row.Description, row.Address, row.Lat, row.Lon,
			row.VideoURL, row.LogoURL, row.Category, row.Subcategory, row.IsFree,
			pq.Array([]string(row.Photos)), row.Differential, row.Rating,
			row.Comments, row.SocialMedia, row.Details,
		)
		if err != nil {
			r.logger.Error("Failed to upsert place", zap.Int64("id", row.ID), zap.Error(err))
			return 0, fmt.Errorf("upsert place %d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("Places upserted", zap.Int("count", len(places)))
	return len(places), nil
}

func (row *placeRow) toDomain() (*domain.Place, error) {
	p := &domain.Place{
		ID:           row.ID,
		Type:         domain.PlaceType(row.Type),
		Name:         row.Name,
		Description:  row.Description,
		Address:      row.Address,
		Location:     domain.Point{Lat: row.Lat, Lon: row.Lon},
		VideoURL:     row.VideoURL,
		LogoURL:      row.LogoURL,
		Category:     row.Category,
		Subcategory:  row.Subcategory,
		IsFree:       row.IsFree,
		Photos:       []string(row.Photos),
		Differential: row.Differential,
		Rating:       row.Rating,
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}

	if err := unmarshalOptional(row.Comments, &p.Comments); err != nil {
		return nil, fmt.Errorf("comments: %w", err)
	}
	if err := unmarshalOptional(row.SocialMedia, &p.SocialMedia); err != nil {
		return nil, fmt.Errorf("social_media: %w", err)
	}

	var err error
	switch p.Type {
	case domain.PlaceTypeBusiness:
		p.Business = &domain.BusinessDetails{}
		err = json.Unmarshal(row.Details, p.Business)
	case domain.PlaceTypeEvent:
		p.Event = &domain.EventDetails{}
		err = json.Unmarshal(row.Details, p.Event)
	case domain.PlaceTypePublic:
		p.Public = &domain.PublicPlaceDetails{}
		err = json.Unmarshal(row.Details, p.Public)
	}
	if err != nil {
		return nil, fmt.Errorf("details: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func rowFromDomain(p *domain.Place) (*placeRow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var details interface{}
	switch p.Type {
	case domain.PlaceTypeBusiness:
		details = p.Business
	case domain.PlaceTypeEvent:
		details = p.Event
	case domain.PlaceTypePublic:
		details = p.Public
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshal details of place %d: %w", p.ID, err)
	}
	commentsJSON, err := marshalList(p.Comments)
	if err != nil {
		return nil, fmt.Errorf("marshal comments of place %d: %w", p.ID, err)
	}
	socialJSON, err := marshalList(p.SocialMedia)
	if err != nil {
		return nil, fmt.Errorf("marshal social media of place %d: %w", p.ID, err)
	}

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	return &placeRow{
		ID:           p.ID,
		Type:         string(p.Type),
		Name:         p.Name,
		Description:  p.Description,
		Address:      p.Address,
		Lat:          p.Location.Lat,
		Lon:          p.Location.Lon,
		VideoURL:     p.VideoURL,
		LogoURL:      p.LogoURL,
		Category:     p.Category,
		Subcategory:  p.Subcategory,
		IsFree:       p.IsFree,
		Photos:       pq.StringArray(photos),
		Differential: p.Differential,
		Rating:       p.Rating,
		Comments:     commentsJSON,
		SocialMedia:  socialJSON,
		Details:      detailsJSON,
	}, nil
}

func unmarshalOptional(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// marshalList сериализует nil-срез как [], чтобы не нарушать NOT NULL DEFAULT '[]'
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}
