package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Defaults applied when a user profile is first created
	DefaultCycleStartDay int
	DefaultCurrencySym   string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "centavo"),
		DBPassword: getEnv("DB_PASSWORD", "centavo"),
		DBName:     getEnv("DB_NAME", "centavo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DefaultCurrencySym: getEnv("CURRENCY_SYMBOL", "$"),
	}

	dayStr := getEnv("DEFAULT_CYCLE_START_DAY", "1")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		log.Printf("Warning: invalid DEFAULT_CYCLE_START_DAY value '%s', falling back to 1\n", dayStr)
		day = 1
	}
	config.DefaultCycleStartDay = day

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
