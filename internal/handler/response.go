package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"examadmin/internal/controller"
	"examadmin/internal/errors"
)

// ActionResponse is returned by every mutating endpoint.
type ActionResponse struct {
	Notice controller.Notice `json:"notice"`
}

// actionResult renders the outcome of a mutation. Failures keep the notice
// text as the error message so the dashboard can show it as is.
func actionResult(c echo.Context, notice controller.Notice, err error) error {
	if err != nil {
		status, code := errors.StatusFor(err)
		msg := notice.Text
		if msg == "" {
			msg = err.Error()
		}
		return echo.NewHTTPError(status, errors.ErrorResponse{Error: msg, Code: code})
	}
	return c.JSON(http.StatusOK, ActionResponse{Notice: notice})
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}

// confirmation reads the answer to a destructive action's prompt from ?confirm=.
func confirmation(c echo.Context) controller.Confirmer {
	return controller.Confirmed(queryBool(c, "confirm"))
}

func failedNotice(err error) controller.Notice {
	return controller.Notice{Kind: controller.NoticeError, Text: errors.UserMessage(err, "Request failed")}
}
