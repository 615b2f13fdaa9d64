package ephemeris

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the ephemeris routes on the given API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.GET("/equinox", h.Equinox)
	api.GET("/deltat", h.DeltaT)
}
