package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	RedisAddr   string
	PostgresDSN string // optional; empty disables the article archive

	// RSS2JSONEndpoint overrides the conversion service URL, mainly for
	// tests and self-hosted converters.
	RSS2JSONEndpoint string

	// FeedsFile points at a YAML feed table; empty uses the built-in
	// Butuan source list.
	FeedsFile string

	CronSpec string
}

func Load() *Config {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "9000"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN:      getEnv("POSTGRES_DSN", ""),
		RSS2JSONEndpoint: getEnv("RSS2JSON_ENDPOINT", ""),
		FeedsFile:        getEnv("FEEDS_FILE", ""),
		CronSpec:         getEnv("CRON_SPEC", "*/30 * * * *"),
	}

	log.Printf("config loaded: port=%s cron=%s feeds=%s", cfg.AppPort, cfg.CronSpec, cfg.FeedsFile)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
