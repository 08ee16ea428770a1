package handlers

import (
	"errors"
	"net/http"

	"law_office_app_go/logging"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// writeError maps service errors onto HTTP statuses with the uniform
// {"error": message} body. Upstream failures keep the upstream status when one
// was received; everything unclassified is a 500.
func writeError(c echo.Context, err error) error {
	var (
		decodeErr     *services.DecodeError
		validationErr *services.ValidationError
		referenceErr  *services.ReferenceError
		notFoundErr   *services.NotFoundError
		upstreamErr   *services.UpstreamError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &decodeErr),
		errors.As(err, &validationErr),
		errors.As(err, &referenceErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &upstreamErr):
		if upstreamErr.StatusCode >= http.StatusBadRequest {
			status = upstreamErr.StatusCode
		}
	}

	if status >= http.StatusInternalServerError {
		logging.Log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request failed")
	}

	return c.JSON(status, map[string]string{"error": err.Error()})
}
