package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vivemap/internal/pkg/errors"
	"github.com/vivemap/internal/usecase/dto"
)

// parsePlacesQuery собирает PlacesQuery из query string.
// subcategories - список через запятую; lat/lon передаются только вместе.
func parsePlacesQuery(c *fiber.Ctx) (dto.PlacesQuery, error) {
	q := dto.PlacesQuery{
		Category:      c.Query("category"),
		Subcategories: dto.SplitList(c.Query("subcategories")),
		TimeFrame:     c.Query("time_frame"),
		Eventual:      c.QueryBool("eventual"),
		Permanent:     c.QueryBool("permanent"),
		Free:          c.QueryBool("free"),
		Promotions:    c.QueryBool("promotions"),
		View:          c.Query("view"),
	}

	lat, err := parseOptionalFloat(c.Query("lat"))
	if err != nil {
		return q, errors.ErrInvalidCoordinates
	}
	lon, err := parseOptionalFloat(c.Query("lon"))
	if err != nil {
		return q, errors.ErrInvalidCoordinates
	}
	q.Lat, q.Lon = lat, lon

	return q, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parsePlaceID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "must be a positive integer"})
	}
	return id, nil
}
