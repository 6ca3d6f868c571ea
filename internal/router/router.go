package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"examadmin/internal/auth"
	"examadmin/internal/config"
	"examadmin/internal/errors"
	"examadmin/internal/handler"
)

// Handlers groups every page handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Dashboard     *handler.DashboardHandler
	Users         *handler.UserHandler
	Questions     *handler.QuestionHandler
	Logs          *handler.LogHandler
	Notifications *handler.NotificationHandler
	Settings      *handler.SettingsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/session", h.Auth.Session)

	// Page routes are public unless the bearer gate is enabled.
	pages := api.Group("")
	if cfg.GateEnabled() {
		pages.Use(Gate(auth.NewVerifier(cfg.JWTSecret)))
	}

	pages.GET("/dashboard", h.Dashboard.Get)
	pages.GET("/users", h.Users.ListUsers)

	pages.GET("/questions", h.Questions.List)
	pages.POST("/questions", h.Questions.Create)
	pages.GET("/questions/:id", h.Questions.Get)
	pages.PUT("/questions/:id", h.Questions.Edit)
	pages.POST("/questions/:id/toggle", h.Questions.Toggle)
	pages.DELETE("/questions/:id", h.Questions.Delete)

	pages.GET("/logs", h.Logs.List)

	pages.GET("/notifications", h.Notifications.List)
	pages.POST("/notifications", h.Notifications.Create)
	pages.POST("/notifications/:id/send", h.Notifications.Send)
	pages.DELETE("/notifications/:id", h.Notifications.Delete)

	pages.GET("/settings", h.Settings.Get)
	pages.PATCH("/settings", h.Settings.Patch)
	pages.PUT("/settings", h.Settings.Put)
	pages.POST("/settings/save", h.Settings.Save)
}

// Gate requires a bearer token signed with the verifier's secret. Verified
// claims are stored under "user".
func Gate(verifier *auth.Verifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return verifier.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid bearer token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
