package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Oracle   OracleConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Monitor  MonitorConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type OracleConfig struct {
	BaseURL           string
	APIKey            string
	Model             string
	TimeoutSeconds    int
	RequestsPerSecond int
}

// RedisConfig selects the run-history store; an empty Addr keeps history
// in process memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig enables the optional Postgres run archive when DSN is set.
type DatabaseConfig struct {
	DSN string
}

// MonitorConfig drives the watchlist scheduler; an empty CronSpec
// disables it. Brands is the raw watchlist spec, parsed by the monitor.
type MonitorConfig struct {
	CronSpec string
	Brands   string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Oracle: OracleConfig{
			BaseURL:           getEnv("ORACLE_BASE_URL", "https://api.openai.com/v1"),
			APIKey:            getEnv("ORACLE_API_KEY", ""),
			Model:             getEnv("ORACLE_MODEL", "gpt-4o-mini"),
			TimeoutSeconds:    getEnvAsInt("ORACLE_TIMEOUT_SECONDS", 60),
			RequestsPerSecond: getEnvAsInt("ORACLE_RPS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Monitor: MonitorConfig{
			CronSpec: getEnv("MONITOR_CRON", ""),
			Brands:   getEnv("MONITOR_BRANDS", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.App.Environment == "production" && c.Oracle.APIKey == "" {
		return fmt.Errorf("ORACLE_API_KEY is required in production")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
