package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"examadmin/internal/service"
)

// UserHandler serves the users page.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Name or email filter"
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} service.UsersView
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	view := h.svc.View(c.Request().Context(), c.QueryParam("search"), queryBool(c, "refresh"))
	return c.JSON(http.StatusOK, view)
}
