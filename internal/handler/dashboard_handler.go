package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"examadmin/internal/service"
)

// DashboardHandler serves the dashboard page.
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get godoc
// @Summary Dashboard statistics
// @Description Falls back to demo counters with a banner when the backend is unreachable.
// @Tags dashboard
// @Produce json
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} service.DashboardView
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.View(c.Request().Context(), queryBool(c, "refresh")))
}
