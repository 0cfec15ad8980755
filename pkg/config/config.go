package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string

	JWTSecret string
	JWTIssuer string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// DictionaryPath — YAML с правками справочника терминов, пусто — встроенный.
	DictionaryPath string
	CacheSize      int
	CacheTTL       time.Duration
	MaxUploadBytes int64
}

// Load читает переменные окружения, при наличии подгружая .env.
func Load() Config {
	// .env необязателен
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer: getEnv("JWT_ISSUER", "hr-service"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "staffing-service"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		DictionaryPath: os.Getenv("DICTIONARY_PATH"),
		CacheSize:      getEnvInt("CACHE_SIZE", 256),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_MINUTES", 30)) * time.Minute,
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 15)) << 20,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
