package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Durations

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Logging library
)

// DevJWTSecret is the fallback signing key used when JWT_SECRET is unset.
// Development only; a deployment must set its own secret.
const DevJWTSecret = "supersecret"

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT signing key
	TokenTTL   time.Duration // Bearer token lifetime
	RedisAddr  string        // Redis server address
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	RateLimit  int           // Requests allowed per window per client IP
	RateWindow time.Duration // Rate limit window
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		// Keep the server usable in development, but make it loud
		logrus.Warn("JWT_SECRET not set, using development-only default")
		jwtSecret = DevJWTSecret
	}

	return &Config{
		AppPort:    getEnv("APP_PORT", "5127"),                                        // Application port
		DBUser:     os.Getenv("DB_USER"),                                              // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),                                          // Database password
		DBHost:     os.Getenv("DB_HOST"),                                              // Database host
		DBPort:     os.Getenv("DB_PORT"),                                              // Database port
		DBName:     os.Getenv("DB_NAME"),                                              // Database name
		JWTSecret:  jwtSecret,                                                         // JWT signing key
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,       // Token lifetime
		RedisAddr:  os.Getenv("REDIS_ADDR"),                                           // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),                                           // Redis password
		RedisDB:    getEnvInt("REDIS_DB", 0),                                          // Redis database number
		RateLimit:  getEnvInt("RATE_LIMIT", 100),                                      // Requests per window
		RateWindow: time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second, // Window size
		IsProd:     os.Getenv("IS_PROD") == "true",                                    // Is production environment
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the variable's value or a default when unset
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the variable parsed as int or a default when unset/invalid
func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
