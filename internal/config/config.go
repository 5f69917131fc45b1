package config

import (
	"os"
	"strconv"

	"citadel_backend/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string // empty disables history persistence
	JWTSecret   string
	RedisAddr   string
	RedisDB     int

	// Root admin capability. Empty means a fresh one is minted at boot and
	// printed to the log once.
	AdminBootstrapToken string

	// Matchmaker settings
	MatchmakerEnabled  bool
	MatchmakerPlayers  int
	MatchmakerInterval int // seconds

	// Rate limits
	APIRateLimit   int
	APIRateWindow  int // seconds
	AuthRateLimit  int
	AuthRateWindow int // seconds
	PlayRateLimit  int
	PlayRateWindow int // seconds

	LogLevel string
	LogJSON  bool
}

// Load reads the configuration from the environment, with .env as fallback.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   jwtSecret,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisDB:     envInt("REDIS_DB", 0),

		AdminBootstrapToken: os.Getenv("ADMIN_BOOTSTRAP_TOKEN"),

		MatchmakerEnabled:  os.Getenv("MATCHMAKER_ENABLED") != "false",
		MatchmakerPlayers:  envInt("MATCHMAKER_PLAYERS", 2),
		MatchmakerInterval: envInt("MATCHMAKER_INTERVAL_SECONDS", 5),

		APIRateLimit:   envInt("API_RATE_LIMIT", 60),
		APIRateWindow:  envInt("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: envInt("AUTH_RATE_WINDOW_SECONDS", 60),
		PlayRateLimit:  envInt("PLAY_RATE_LIMIT", 60),
		PlayRateWindow: envInt("PLAY_RATE_WINDOW_SECONDS", 60),

		LogLevel: os.Getenv("LOG_LEVEL"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
