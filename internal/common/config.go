package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Listing  ListingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ListingConfig holds the paging and lookback-window parameters of the job
// listing engine. The per-tab windows bound query cost when no explicit filter
// is active; the exact durations are operational tuning, not business rules.
type ListingConfig struct {
	PageSize               int
	EmCursoWindowMonths    int
	ConcluidosWindowMonths int
	PendentesWindowMonths  int
	PHCLookupTimeout       time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Listing: ListingConfig{
			PageSize:               getEnvAsInt("PAGE_SIZE", 50),
			EmCursoWindowMonths:    getEnvAsInt("WINDOW_EM_CURSO_MONTHS", 12),
			ConcluidosWindowMonths: getEnvAsInt("WINDOW_CONCLUIDOS_MONTHS", 6),
			PendentesWindowMonths:  getEnvAsInt("WINDOW_PENDENTES_MONTHS", 12),
			PHCLookupTimeout:       getEnvAsDuration("PHC_LOOKUP_TIMEOUT", 5*time.Second),
		},
	}
}

// WindowMonths returns the configured lookback window for a tab value, or 0
// when the tab is unknown (no window).
func (l ListingConfig) WindowMonths(tab string) int {
	switch tab {
	case "em_curso":
		return l.EmCursoWindowMonths
	case "concluidos":
		return l.ConcluidosWindowMonths
	case "pendentes":
		return l.PendentesWindowMonths
	}
	return 0
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Listing.PageSize <= 0 {
		return NewAppError("CONFIG_ERROR", "PAGE_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
