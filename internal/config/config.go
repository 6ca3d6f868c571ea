package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the exam backend used when API_URL is not set.
const DefaultAPIURL = "https://zesty-consideration-production.up.railway.app/api"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	APIURL       string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	AuthRequired bool
	LogsPageSize int
	SwaggerHost  string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		APIURL:       strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AuthRequired: getEnvBool("AUTH_REQUIRED", false),
		LogsPageSize: getEnvInt("LOGS_PAGE_SIZE", 20),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

// GateEnabled reports whether inbound requests must carry a verified bearer token.
func (c *Config) GateEnabled() bool {
	return c.AuthRequired && c.JWTSecret != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
