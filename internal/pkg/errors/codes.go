package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrInvalidSubcategory = New(
		"INVALID_SUBCATEGORY",
		"Subcategory does not belong to the selected category",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFrame = New(
		"INVALID_TIME_FRAME",
		"Invalid time frame",
		http.StatusBadRequest,
	)

	ErrInvalidView = New(
		"INVALID_VIEW",
		"Invalid view, expected one of reels, list, map",
		http.StatusBadRequest,
	)

	ErrInvalidAction = New(
		"INVALID_ACTION",
		"Invalid filter action",
		http.StatusBadRequest,
	)

	ErrInvalidSessionID = New(
		"INVALID_SESSION_ID",
		"Invalid session ID",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
