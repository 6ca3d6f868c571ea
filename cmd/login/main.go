package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"examadmin/internal/apiclient"
	"examadmin/internal/config"
	"examadmin/internal/service"
	"examadmin/internal/session"
)

func main() {
	log.Println("Starting admin login...")

	cfg := config.Load()

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	logout := flag.Bool("logout", false, "clear the stored session instead of signing in")
	flag.Parse()

	// The token only outlives this process when it lands in redis.
	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR must be set so the server can pick up the session")
	}
	store := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sess, err := session.New(ctx, store)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	authService := service.NewAuthService(apiclient.New(cfg.APIURL, sess), sess)

	if *logout {
		if err := authService.Logout(ctx); err != nil {
			log.Fatalf("Failed to clear session: %v", err)
		}
		log.Println("Session cleared")
		return
	}

	if *email == "" || *password == "" {
		log.Fatal("email and password are required (flags or ADMIN_EMAIL / ADMIN_PASSWORD)")
	}

	log.Printf("Signing in to %s as %s", cfg.APIURL, *email)
	user, err := authService.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	info := authService.Info()
	log.Printf("Signed in as %s (%s)", user.DisplayName(), user.Role)
	if info.Token != nil && info.Token.ExpiresAt != nil {
		log.Printf("  - Token expires at: %s", info.Token.ExpiresAt.Format(time.RFC3339))
	}
	log.Printf("  - Stored under redis key: %s", session.TokenKey)
}
