package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Storage    StorageConfig
	Attendance AttendanceConfig
	Geocoding  GeocodingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	AllowedOrigin string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig bounds repeated login failures per client.
type RateLimitConfig struct {
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// AttendanceConfig carries the process-wide clock policy. Each value can be
// overridden per contract.
type AttendanceConfig struct {
	DefaultRadiusMeters     int
	DefaultToleranceMinutes int
	RoundingMinutes         int
	JustificationSLAHours   int
}

type GeocodingConfig struct {
	GoogleAPIKey string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deploys; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "checkpoint_db"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Redis configuration (login attempt counter)
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	loginMaxAttempts, err := getIntEnv("LOGIN_MAX_ATTEMPTS", 5)
	if err != nil {
		return nil, err
	}
	loginWindow, err := time.ParseDuration(getEnv("LOGIN_ATTEMPT_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_ATTEMPT_WINDOW: %w", err)
	}
	config.RateLimit = RateLimitConfig{
		LoginMaxAttempts: loginMaxAttempts,
		LoginWindow:      loginWindow,
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Attendance policy (env names kept from the historical deployment)
	radius, err := getIntEnv("PONTO_RAIO_PADRAO_METROS", 200)
	if err != nil {
		return nil, err
	}
	tolerance, err := getIntEnv("PONTO_TOLERANCIA_PADRAO_MINUTOS", 10)
	if err != nil {
		return nil, err
	}
	rounding, err := getIntEnv("PONTO_ARREDONDAMENTO_MINUTOS", 5)
	if err != nil {
		return nil, err
	}
	slaHours, err := getIntEnv("JUSTIFICATIVA_SLA_HORAS", 48)
	if err != nil {
		return nil, err
	}
	config.Attendance = AttendanceConfig{
		DefaultRadiusMeters:     radius,
		DefaultToleranceMinutes: tolerance,
		RoundingMinutes:         rounding,
		JustificationSLAHours:   slaHours,
	}

	config.Geocoding = GeocodingConfig{
		GoogleAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("PONTO_RAIO_PADRAO_METROS must be positive")
	}
	if c.Attendance.RoundingMinutes <= 0 {
		return fmt.Errorf("PONTO_ARREDONDAMENTO_MINUTOS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
