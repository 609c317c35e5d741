package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	DatabaseDSN string
	Env         string
	Currency    string
	// DefaultTaxRate applies when a quotation request carries no rate.
	DefaultTaxRate float64
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) >
// default.
func Load() Config {
	cfg := Config{}
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "quoting.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.Currency = getEnv("CURRENCY", "USD")
	cfg.DefaultTaxRate = ParseFloat("TAX_RATE", 0.21)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

// ParseFloat reads an env var as float64 with default.
func ParseFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("invalid number for %s: %s", key, v)
			return def
		}
		return f
	}
	return def
}
