package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Cleaner  CleanerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// AuthConfig holds the static admin credential and JWT settings
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	// LoginRatePerMinute limits login attempts per client IP
	LoginRatePerMinute int
}

// UploadConfig holds attachment storage configuration
type UploadConfig struct {
	// Dir is the root directory holding uploaded report files
	Dir string
	// BaseURL is prefixed to stored file names when building download links
	BaseURL string
	// MaxSizeBytes caps a single uploaded file
	MaxSizeBytes int64
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// CleanerConfig holds the orphan file sweeper configuration
type CleanerConfig struct {
	// CronExpression schedules the sweep (seconds precision); empty disables it
	CronExpression string
	// MinAge keeps files younger than this, so an in-flight save is never swept
	MinAge time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "5000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "qrmaster"),
			Password: getEnv("DB_PASSWORD", "secret"),
			DBName:   getEnv("DB_NAME", "qrmaster"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:      getEnv("ADMIN_PASSWORD", "1234"),
			JWTSecret:          getEnv("JWT_SECRET", "change-me"),
			TokenTTL:           getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
			LoginRatePerMinute: getEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "uploads"),
			BaseURL:      getEnv("UPLOAD_BASE_URL", "/uploads"),
			MaxSizeBytes: int64(getEnvAsInt("UPLOAD_MAX_SIZE_BYTES", 16*1024*1024)),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		},
		Cleaner: CleanerConfig{
			CronExpression: getEnv("CLEANER_CRON_EXPRESSION", "0 0 * * * *"),
			MinAge:         getEnvAsDuration("CLEANER_MIN_AGE", time.Hour),
		},
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsDuration gets an environment variable as duration with a fallback value
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
