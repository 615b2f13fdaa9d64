package convert

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the conversion routes on the given API group.
func RegisterRoutes(api *echo.Group, h *Handler) {
	api.POST("/convert", h.Convert)
	api.GET("/calendars", h.Calendars)
	api.GET("/jd/:value", h.Expand)
	api.GET("/today", h.Today)
}
