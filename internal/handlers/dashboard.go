package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourguard/tourguard-backend/internal/repo"
)

type DashboardHandler struct {
	Repo *repo.GormRepo
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.Repo.DashboardStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}
	return c.JSON(http.StatusOK, stats)
}
