package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"examadmin/internal/errors"
	"examadmin/internal/model"
	"examadmin/internal/service"
)

// QuestionHandler serves the questions page and its actions.
type QuestionHandler struct {
	svc service.QuestionService
}

// NewQuestionHandler creates a question handler.
func NewQuestionHandler(svc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// List godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param search query string false "Question text filter"
// @Param category query string false "Exact category"
// @Param refresh query bool false "Refetch from the backend"
// @Success 200 {object} service.QuestionsView
// @Failure 422 {object} errors.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	category := model.Category(c.QueryParam("category"))
	if category != "" && !category.Valid() {
		err := errors.NewValidationError("category", "is not a known category")
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	view := h.svc.View(c.Request().Context(), service.QuestionQuery{
		Search:   c.QueryParam("search"),
		Category: category,
		Refresh:  queryBool(c, "refresh"),
	})
	return c.JSON(http.StatusOK, view)
}

// Get godoc
// @Summary Get a question with its pre-filled form
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} service.QuestionDetail
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	detail, err := h.svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, code := errors.StatusFor(err)
		return echo.NewHTTPError(status, errors.ErrorResponse{Error: err.Error(), Code: code})
	}
	return c.JSON(http.StatusOK, detail)
}

// Create godoc
// @Summary Create a question
// @Description Accepts JSON, or multipart form fields with an optional "image" file embedded as a data URI.
// @Tags questions
// @Accept json,mpfd
// @Produce json
// @Param request body service.QuestionForm true "Question"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	form := service.NewQuestionForm()
	if err := c.Bind(&form); err != nil {
		return invalidBody()
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		uri, err := uploadedImage(c)
		if err != nil {
			return actionResult(c, failedNotice(err), err)
		}
		if uri != "" {
			form.ImageURL = uri
		}
	}

	notice, err := h.svc.Create(c.Request().Context(), form)
	return actionResult(c, notice, err)
}

// uploadedImage returns the "image" file as a data URI, or "" when none was sent.
func uploadedImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", errors.NewValidationError("image", "could not be read")
	}
	src, err := file.Open()
	if err != nil {
		return "", errors.NewValidationError("image", "could not be read")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", errors.NewValidationError("image", "could not be read")
	}
	return service.ImageDataURI(data)
}

// Edit godoc
// @Summary Edit a question
// @Description The backend has no update endpoint; this always answers 501 without calling it.
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body service.QuestionForm true "Question"
// @Failure 501 {object} errors.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) Edit(c echo.Context) error {
	var form service.QuestionForm
	if err := c.Bind(&form); err != nil {
		return invalidBody()
	}
	notice, err := h.svc.Edit(c.Request().Context(), c.Param("id"), form)
	return actionResult(c, notice, err)
}

// Toggle godoc
// @Summary Toggle a question's active flag
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /questions/{id}/toggle [post]
func (h *QuestionHandler) Toggle(c echo.Context) error {
	notice, err := h.svc.Toggle(c.Request().Context(), c.Param("id"))
	return actionResult(c, notice, err)
}

// Delete godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Param confirm query bool true "Must be true; otherwise nothing is deleted"
// @Success 200 {object} ActionResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	notice, err := h.svc.Delete(c.Request().Context(), c.Param("id"), confirmation(c))
	return actionResult(c, notice, err)
}
