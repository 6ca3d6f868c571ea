package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"examadmin/internal/service"
)

// NotificationHandler serves the notifications page and its actions.
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary List notifications with counters
// @Tags notifications
// @Produce json
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} service.NotificationsView
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.View(c.Request().Context(), queryBool(c, "refresh")))
}

// Create godoc
// @Summary Create a pending notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.NotificationForm true "Notification"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	form := service.NewNotificationForm()
	if err := c.Bind(&form); err != nil {
		return invalidBody()
	}
	notice, err := h.svc.Create(c.Request().Context(), form)
	return actionResult(c, notice, err)
}

// Send godoc
// @Summary Send a pending notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} ActionResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /notifications/{id}/send [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	notice, err := h.svc.Send(c.Request().Context(), c.Param("id"))
	return actionResult(c, notice, err)
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Param confirm query bool true "Must be true; otherwise nothing is deleted"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	notice, err := h.svc.Delete(c.Request().Context(), c.Param("id"), confirmation(c))
	return actionResult(c, notice, err)
}
