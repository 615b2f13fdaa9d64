package ephemeris

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/astro"
)

// Handler serves the ephemeris REST endpoints.
type Handler struct {
	svc EphemerisService
}

// NewHandler creates a new ephemeris handler.
func NewHandler(svc EphemerisService) *Handler {
	return &Handler{svc: svc}
}

// Equinox returns the instant a season begins in a Gregorian year.
// GET /api/v1/equinox?year=1987&season=autumn
func (h *Handler) Equinox(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return apperror.NewValidation("year must be an integer")
	}
	season, ok := astro.ParseSeason(c.QueryParam("season"))
	if !ok {
		return apperror.NewValidation("season must be spring, summer, autumn, or winter")
	}

	view, err := h.svc.Equinox(c.Request().Context(), year, season)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// DeltaT returns the dynamical-minus-universal time difference for a year.
// GET /api/v1/deltat?year=1987
func (h *Handler) DeltaT(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return apperror.NewValidation("year must be an integer")
	}
	return c.JSON(http.StatusOK, h.svc.DeltaT(year))
}
