package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourguard/tourguard-backend/internal/handlers"
	"github.com/tourguard/tourguard-backend/internal/middleware/auth"
)

type Deps struct {
	AuthHandler      *handlers.AuthHandler
	TouristHandler   *handlers.TouristHandler
	IncidentHandler  *handlers.IncidentHandler
	DashboardHandler *handlers.DashboardHandler
	SearchHandler    *handlers.SearchHandler
	SeedHandler      *handlers.SeedHandler
	Resolver         *auth.Resolver
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)
	api.POST("/init-sample-data", d.SeedHandler.InitSampleData)

	private := api.Group("", d.Resolver.RequireAuth)

	private.GET("/dashboard/stats", d.DashboardHandler.Stats)
	private.GET("/tourists", d.TouristHandler.GetTourists)
	private.GET("/tourists/search", d.SearchHandler.Handler)
	private.GET("/tourists/:id", d.TouristHandler.GetTourist)
	private.GET("/incidents", d.IncidentHandler.GetIncidents)
	private.POST("/incidents", d.IncidentHandler.CreateIncident)
}
