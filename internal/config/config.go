package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Policy   Policy
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
	AutoMigrate bool

	// ContractSweepInterval is how often contract gauges are refreshed. Zero disables the job.
	ContractSweepInterval time.Duration
}

func Load() (*Config, error) {
	// a missing .env is fine, the process environment is used as is
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

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
		Name:     getEnv("DB_NAME", "sbexpress-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AutoMigrate: strings.EqualFold(getEnv("APP_AUTO_MIGRATE", "false"), "true"),
	}

	sweep, err := time.ParseDuration(getEnv("CONTRACT_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTRACT_SWEEP_INTERVAL: %w", err)
	}
	config.App.ContractSweepInterval = sweep

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPolicy() (Policy, error) {
	p := DefaultPolicy()

	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", DefaultTimezone))
	if err != nil {
		return p, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	p.Location = loc

	workStart, err := ParseClock(getEnv("ATTENDANCE_WORK_START", DefaultWorkStart))
	if err != nil {
		return p, fmt.Errorf("invalid ATTENDANCE_WORK_START: %w", err)
	}
	p.WorkStart = workStart

	window, err := time.ParseDuration(getEnv("DASHBOARD_ACTIVE_WINDOW", "30m"))
	if err != nil {
		return p, fmt.Errorf("invalid DASHBOARD_ACTIVE_WINDOW: %w", err)
	}
	p.ActiveWindow = window

	if p.RecentActivityLimit, err = getEnvInt("DASHBOARD_RECENT_ACTIVITY_LIMIT", p.RecentActivityLimit); err != nil {
		return p, err
	}
	if p.BirthdayLookaheadDays, err = getEnvInt("NOTIFICATION_BIRTHDAY_DAYS", p.BirthdayLookaheadDays); err != nil {
		return p, err
	}
	if p.ContractUrgentDays, err = getEnvInt("CONTRACT_URGENT_DAYS", p.ContractUrgentDays); err != nil {
		return p, err
	}
	if p.ContractExpiringDays, err = getEnvInt("CONTRACT_EXPIRING_DAYS", p.ContractExpiringDays); err != nil {
		return p, err
	}

	return p, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	return c.Policy.Validate()
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

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
