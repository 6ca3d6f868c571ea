package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	_ "examadmin/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"examadmin/internal/apiclient"
	"examadmin/internal/auth"
	"examadmin/internal/config"
	"examadmin/internal/handler"
	"examadmin/internal/router"
	"examadmin/internal/service"
	"examadmin/internal/session"
)

// @title Exam Admin API
// @version 1.0
// @description Admin backend-for-frontend for the driving exam platform: dashboard, users, questions, audit logs, notifications and settings.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Only checked when AUTH_REQUIRED is set.
func main() {
	cfg := config.Load()

	e := echo.New()

	store := newStore(cfg)
	sess, err := session.New(context.Background(), store)
	if err != nil {
		log.Fatalf("session init: %v", err)
	}
	if sess.Authenticated() {
		log.Println("restored admin session")
	}

	api := apiclient.New(cfg.APIURL, sess)
	log.Printf("using exam backend %s", api.BaseURL())

	// Initialize services
	authService := service.NewAuthService(api, sess)
	dashboardService := service.NewDashboardService(api)
	userService := service.NewUserService(api)
	questionService := service.NewQuestionService(api)
	logService := service.NewLogService(api, cfg.LogsPageSize)
	notificationService := service.NewNotificationService(api)
	settingsEditor := service.NewSettingsEditor(api)

	// Login hands out gate tokens only when the gate checks them.
	var issuer *auth.Verifier
	if cfg.GateEnabled() {
		issuer = auth.NewVerifier(cfg.JWTSecret)
	}

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Auth:          handler.NewAuthHandler(authService, issuer),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Users:         handler.NewUserHandler(userService),
		Questions:     handler.NewQuestionHandler(questionService),
		Logs:          handler.NewLogHandler(logService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Settings:      handler.NewSettingsHandler(settingsEditor),
	})

	if cfg.GateEnabled() {
		log.Println("bearer gate enabled for page routes")
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// newStore keeps the admin token in Redis when REDIS_ADDR is set so it
// survives restarts; otherwise it lives in process memory.
func newStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore()
	}
	log.Printf("persisting session in redis at %s", cfg.RedisAddr)
	return session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
