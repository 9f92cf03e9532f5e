package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Llm       LLMConfig
	Messaging MessagingConfig
	Auth      AuthConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	PublicBaseURL      string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	ImageDir           string
	DefaultLanguage    string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	Store           string // "memory" or "redis"
	RedisURL        string
	TTL             time.Duration
	CleanupInterval time.Duration
	// LockTTL and LockWait only apply to the redis store.
	LockTTL         time.Duration
	LockWait        time.Duration
}

type LLMConfig struct {
	Provider    string // "none", "ollama", "huggingface", "gemini"
	Model       string
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
}

type MessagingConfig struct {
	NatsURL string // empty disables the inbound gateway worker
}

type AuthConfig struct {
	JWTSecret string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ImageDir:           getEnv("IMAGE_DIR", "./images"),
			DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "english"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Store:           getEnv("SESSION_STORE", "memory"),
			RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:             getEnvAsDuration("SESSION_TTL", time.Hour),
			CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			LockTTL:         getEnvAsDuration("SESSION_LOCK_TTL", time.Minute),
			LockWait:        getEnvAsDuration("SESSION_LOCK_WAIT", 30*time.Second),
		},
		Llm: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "none"),
			Model:       getEnv("LLM_MODEL", ""),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			APIKey:      getEnv("LLM_API_KEY", getEnv("GOOGLE_GEMINI_API_KEY", "")),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 20*time.Second),
			MaxAttempts: getEnvAsInt("LLM_MAX_ATTEMPTS", 1),
		},
		Messaging: MessagingConfig{
			NatsURL: getEnv("NATS_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "shop-assistant-be"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
