package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/etalab-ia/evalap/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses:
// schema errors to 400, missing entities to 404, integrity conflicts to 409.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var refErr *services.ReferencedError
	if errors.As(err, &refErr) {
		return echo.NewHTTPError(http.StatusBadRequest, refErr.Error())
	}
	if errors.Is(err, services.ErrExperimentRunning) {
		return echo.NewHTTPError(http.StatusBadRequest, "experiment is running, please try again later")
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
