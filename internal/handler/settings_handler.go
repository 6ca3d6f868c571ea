package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"examadmin/internal/controller"
	"examadmin/internal/errors"
	"examadmin/internal/model"
	"examadmin/internal/service"
)

// SettingsEditor is the draft editor behind the settings page.
type SettingsEditor interface {
	Load(ctx context.Context, force bool) service.SettingsView
	View() service.SettingsView
	Apply(fields, examLimits map[string]int) error
	Replace(settings model.AppSettings)
	Save(ctx context.Context) (controller.Notice, error)
}

// SettingsHandler serves the settings page.
type SettingsHandler struct {
	editor SettingsEditor
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(editor SettingsEditor) *SettingsHandler {
	return &SettingsHandler{editor: editor}
}

// Get godoc
// @Summary Settings draft
// @Description Loads the settings on first use; the draft keeps its defaults when the backend is unavailable.
// @Tags settings
// @Produce json
// @Param refresh query bool false "Reload from the backend, discarding local edits"
// @Success 200 {object} service.SettingsView
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.editor.Load(c.Request().Context(), queryBool(c, "refresh")))
}

// Patch godoc
// @Summary Edit draft fields
// @Description Top-level fields by JSON name, plus an optional "examLimits" object. Values are clamped to their bounds. Either every field is applied or none is. Nothing is saved.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Fields to change"
// @Success 200 {object} service.SettingsView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /settings [patch]
func (h *SettingsHandler) Patch(c echo.Context) error {
	var body map[string]json.RawMessage
	if err := c.Bind(&body); err != nil {
		return invalidBody()
	}

	h.editor.Load(c.Request().Context(), false)
	if err := h.apply(body); err != nil {
		status, code := errors.StatusFor(err)
		return echo.NewHTTPError(status, errors.ErrorResponse{Error: err.Error(), Code: code})
	}
	return c.JSON(http.StatusOK, h.editor.View())
}

func (h *SettingsHandler) apply(body map[string]json.RawMessage) error {
	names := make([]string, 0, len(body))
	for name := range body {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(map[string]int, len(body))
	var limits map[string]int
	for _, name := range names {
		if name == "examLimits" {
			if err := json.Unmarshal(body[name], &limits); err != nil {
				return errors.NewValidationError(name, "must be an object of integers")
			}
			continue
		}
		var value int
		if err := json.Unmarshal(body[name], &value); err != nil {
			return errors.NewValidationError(name, "must be an integer")
		}
		fields[name] = value
	}
	return h.editor.Apply(fields, limits)
}

// Put godoc
// @Summary Replace and save the settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body model.AppSettings true "Whole settings document"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) Put(c echo.Context) error {
	var settings model.AppSettings
	if err := c.Bind(&settings); err != nil {
		return invalidBody()
	}
	h.editor.Replace(settings)
	notice, err := h.editor.Save(c.Request().Context())
	return actionResult(c, notice, err)
}

// Save godoc
// @Summary Save the current draft
// @Tags settings
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /settings/save [post]
func (h *SettingsHandler) Save(c echo.Context) error {
	notice, err := h.editor.Save(c.Request().Context())
	return actionResult(c, notice, err)
}
