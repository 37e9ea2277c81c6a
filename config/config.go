package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache configuration constants
const (
	CacheExpiration      = 5 * time.Minute
	CacheCleanupInterval = 10 * time.Minute
)

// Config holds everything read from the environment. It is loaded once at
// process start and passed down; business logic never touches os.Getenv.
type Config struct {
	ListenAddr  string
	DatabaseURL string

	// Session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Verification codes
	RegistrationCodeTTL  time.Duration
	PasswordResetCodeTTL time.Duration

	// Outbound mail
	SMTPHost     string
	SMTPPort     string
	SMTPEmail    string
	SMTPPassword string

	FrontendOrigins []string
	SeedDemoData    bool
}

// Load reads SECRET_KEY.env (if present) and the process environment.
func Load() (Config, error) {
	// A missing env file is fine, variables then come from the host.
	_ = godotenv.Load("SECRET_KEY.env")

	cfg := Config{
		ListenAddr:           getEnv("LISTEN_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", "user=postgres password=admin123 dbname=sudokuDB sslmode=disable"),
		JWTSecret:            os.Getenv("SECRET_KEY"),
		TokenTTL:             durationEnv("TOKEN_TTL_MINUTES", 30),
		RegistrationCodeTTL:  durationEnv("REGISTRATION_CODE_TTL_MINUTES", 10),
		PasswordResetCodeTTL: durationEnv("PASSWORD_RESET_CODE_TTL_MINUTES", 15),
		SMTPHost:             getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:             getEnv("SMTP_PORT", "587"),
		SMTPEmail:            os.Getenv("SMTP_EMAIL"),
		SMTPPassword:         os.Getenv("SMTP_PASSWORD"),
		SeedDemoData:         os.Getenv("SEED_DEMO_DATA") == "true",
	}

	cfg.FrontendOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	if origin := getEnv("API_FRONTEND_URL", ""); origin != "" {
		cfg.FrontendOrigins = append([]string{origin}, cfg.FrontendOrigins...)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("SECRET_KEY is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallbackMinutes int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return time.Duration(fallbackMinutes) * time.Minute
}
