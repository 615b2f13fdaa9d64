package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/middleware"
	"github.com/keyxmakerx/almanac/internal/plugins/convert"
	"github.com/keyxmakerx/almanac/internal/plugins/ephemeris"
)

// RegisterRoutes sets up all application routes. It registers public routes
// directly and delegates to each plugin's route registration function.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check endpoint for Docker health monitoring. Redis is the
	// only backing service.
	e.GET("/healthz", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"redis":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- API Routes ---
	// REST API, rate limited per IP.
	api := e.Group("/api/v1",
		middleware.RateLimit(a.Config.RateLimit.Requests, a.Config.RateLimit.Window))

	// convert plugin: calendar conversions and the calendar catalog.
	convertSvc := convert.NewConvertService()
	convert.RegisterRoutes(api, convert.NewHandler(convertSvc))

	// ephemeris plugin: equinoxes and delta-T, cached in Redis.
	ephemerisSvc := ephemeris.NewEphemerisService(a.Redis, a.Config.Cache.EquinoxTTL)
	ephemeris.RegisterRoutes(api, ephemeris.NewHandler(ephemerisSvc))
}
