package convert

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/almanac"
	"github.com/keyxmakerx/almanac/internal/apperror"
)

// Handler serves the conversion REST endpoints.
type Handler struct {
	svc ConvertService
}

// NewHandler creates a new conversion handler.
func NewHandler(svc ConvertService) *Handler {
	return &Handler{svc: svc}
}

// Convert converts a date between calendars.
// POST /api/v1/convert
func (h *Handler) Convert(c echo.Context) error {
	var req ConvertRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if req.Date.Calendar == "" {
		return apperror.NewValidation("date.calendar is required")
	}
	if req.To == "" {
		return apperror.NewValidation("to is required")
	}

	resp, err := h.svc.Convert(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Calendars returns the supported-calendar catalog.
// GET /api/v1/calendars
func (h *Handler) Calendars(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"calendars": h.svc.Calendars(),
	})
}

// Expand renders a raw Julian day value in one or all calendars.
// GET /api/v1/jd/:value?calendar=hebrew
func (h *Handler) Expand(c echo.Context) error {
	jd, err := strconv.ParseFloat(c.Param("value"), 64)
	if err != nil {
		return apperror.NewValidation("julian day must be a number")
	}

	only := almanac.Kind(c.QueryParam("calendar"))
	exp, err := h.svc.Expand(jd, only)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exp)
}

// Today expands the current UTC instant in every calendar.
// GET /api/v1/today
func (h *Handler) Today(c echo.Context) error {
	exp, err := h.svc.Today(time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exp)
}
