package config

import (
	"coursehub/logger"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	APIPrefix string

	DBDriver        string // postgres, mysql or sqlite
	DatabaseURL     string
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBQueryTimeout  time.Duration
	SeedOnStart     bool
	HealthCheckSpec string
	RecountSpec     string

	JWTKey   string
	TokenTTL time.Duration

	CORSOrigins string
	LogLevel    string
	LogJSON     bool

	SendgridAPIKey  string
	EmailSender     string
	EmailSenderName string
}

// AppConfig is a global variable to access configuration
var AppConfig = Default()

// Default returns the configuration used when no environment is present.
func Default() *Config {
	return &Config{
		Port:            "5000",
		DBDriver:        "sqlite",
		DBName:          "coursehub.db",
		DBPort:          "5432",
		DBMaxOpenConns:  10,
		DBMaxIdleConns:  5,
		DBQueryTimeout:  10 * time.Second,
		HealthCheckSpec: "@every 30s",
		RecountSpec:     "0 3 * * *",
		JWTKey:          "defaultSecret",
		TokenTTL:        24 * time.Hour,
		CORSOrigins:     "*",
		LogLevel:        "info",
		EmailSenderName: "CourseHub",
	}
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	def := Default()
	AppConfig = &Config{
		Port:      getEnv("PORT", def.Port),
		APIPrefix: strings.TrimRight(getEnv("API_PREFIX", ""), "/"),

		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", def.DBDriver)),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", def.DBName),
		DBPort:          getEnv("DB_PORT", def.DBPort),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", def.DBMaxOpenConns),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", def.DBMaxIdleConns),
		DBQueryTimeout:  getEnvDuration("DB_QUERY_TIMEOUT", def.DBQueryTimeout),
		SeedOnStart:     getEnvBool("SEED_ON_START", false),
		HealthCheckSpec: getEnv("HEALTH_CHECK_SPEC", def.HealthCheckSpec),
		RecountSpec:     getEnv("RECOUNT_SPEC", def.RecountSpec),

		JWTKey:   getEnv("JWT_SECRET_KEY", def.JWTKey),
		TokenTTL: getEnvDuration("TOKEN_TTL", def.TokenTTL),

		CORSOrigins: getEnv("CORS_ORIGINS", def.CORSOrigins),
		LogLevel:    getEnv("LOG_LEVEL", def.LogLevel),
		LogJSON:     getEnvBool("LOG_JSON", false),

		SendgridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		EmailSender:     getEnv("EMAIL_SENDER", ""),
		EmailSenderName: getEnv("EMAIL_SENDER_NAME", def.EmailSenderName),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == def.JWTKey {
		logger.Warn("using default JWT_SECRET_KEY, update it in your environment")
	}
	if AppConfig.DBDriver == "sqlite" && AppConfig.DatabaseURL == "" {
		logger.Warn("using local sqlite database", "file", AppConfig.DBName)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("invalid integer in environment", "key", key, "error", err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logger.Warn("invalid boolean in environment", "key", key, "error", err)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid duration in environment", "key", key, "error", err)
		return defaultValue
	}
	return d
}
