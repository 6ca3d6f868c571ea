package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"examadmin/internal/service"
)

// LogHandler serves the audit log page.
type LogHandler struct {
	svc service.LogService
}

// NewLogHandler creates a log handler.
func NewLogHandler(svc service.LogService) *LogHandler {
	return &LogHandler{svc: svc}
}

// List godoc
// @Summary Page through audit logs
// @Description Changing the page fetches it from the backend; search filters the loaded page only.
// @Tags logs
// @Produce json
// @Param page query int false "Page number, from 1"
// @Param search query string false "Action or entity filter"
// @Param refresh query bool false "Refetch the current page"
// @Success 200 {object} service.LogsView
// @Router /logs [get]
func (h *LogHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	view := h.svc.View(c.Request().Context(), service.LogQuery{
		Page:    page,
		Search:  c.QueryParam("search"),
		Refresh: queryBool(c, "refresh"),
	})
	return c.JSON(http.StatusOK, view)
}
