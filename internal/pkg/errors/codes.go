package errors

import "net/http"

var (
	ErrClusterNotFound = New(
		"CLUSTER_NOT_FOUND",
		"Cluster not found in current index",
		http.StatusNotFound,
	)

	ErrAssetNotFound = New(
		"ASSET_NOT_FOUND",
		"Asset not found in current index",
		http.StatusNotFound,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Map session not found",
		http.StatusNotFound,
	)

	ErrSessionDisposed = New(
		"SESSION_DISPOSED",
		"Map session already disposed",
		http.StatusGone,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidBounds = New(
		"INVALID_BOUNDS",
		"Invalid viewport bounds",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level",
		http.StatusBadRequest,
	)

	ErrAssetSourceUnavailable = New(
		"ASSET_SOURCE_UNAVAILABLE",
		"Asset data source unavailable",
		http.StatusServiceUnavailable,
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
