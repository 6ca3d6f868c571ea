package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"examadmin/internal/auth"
	"examadmin/internal/errors"
	"examadmin/internal/model"
	"examadmin/internal/service"
)

// GateTokenTTL is how long a token issued for the inbound gate stays valid.
const GateTokenTTL = 12 * time.Hour

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	issuer      *auth.Verifier
	now         func() time.Time
}

// NewAuthHandler creates a new auth handler. When issuer is set, a successful
// login also returns a token the inbound gate accepts.
func NewAuthHandler(authService service.AuthService, issuer *auth.Verifier) *AuthHandler {
	return &AuthHandler{authService: authService, issuer: issuer, now: time.Now}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login. Token is only present when
// the page routes are gated.
type LoginResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}

// Login godoc
// @Summary Sign in as an administrator
// @Description Logs in against the exam backend. Only ADMIN accounts are accepted; the backend token is kept server side. When the page routes are gated, the response carries a token for them.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status, code := errors.StatusFor(err)
		return echo.NewHTTPError(status, errors.ErrorResponse{
			Error: errors.UserMessage(err, "Login failed"),
			Code:  code,
		})
	}

	resp := LoginResponse{User: user}
	if h.issuer != nil {
		expires := h.now().Add(GateTokenTTL)
		token, err := h.issuer.Sign(&auth.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   string(user.Role),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(h.now()),
				ExpiresAt: jwt.NewNumericDate(expires),
			},
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to issue token",
				Code:  "TOKEN_ISSUE_FAILED",
			})
		}
		resp.Token = token
		resp.ExpiresAt = &expires
	}

	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Session godoc
// @Summary Current session
// @Description Reports whether a backend token is held, with its decoded role and expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} service.SessionInfo
// @Router /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.authService.Info())
}
