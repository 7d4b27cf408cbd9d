package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string // sqlite | mongo
	DBDSN    string
	MongoURI string
	MongoDB  string
	LogFile  string
	LogLevel string

	UpstreamBaseURL         string
	UpstreamElectronicsPath string
	UpstreamBrandsPath      string
	UpstreamTimeout         time.Duration // 0 = no timeout

	SeedOnStart bool
}

func Load() Config {
	// A missing .env is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] could not read .env: %v", err)
	}

	cfg := Config{
		Port:     getString("PORT", "5000"),
		DBDriver: getString("DB_DRIVER", "sqlite"),
		DBDSN:    getString("DB_DSN", "catalog.db"), // sqlite file in working dir
		MongoURI: getString("MONGO_URI", ""),
		MongoDB:  getString("MONGO_DB", "catalog"),
		LogFile:  getString("LOG_FILE", ""),
		LogLevel: getString("LOG_LEVEL", "info"),

		UpstreamBaseURL:         getString("UPSTREAM_BASE_URL", "http://interview.surya-digital.in"),
		UpstreamElectronicsPath: getString("UPSTREAM_ELECTRONICS_PATH", "/get-electronics"),
		UpstreamBrandsPath:      getString("UPSTREAM_BRANDS_PATH", "/get-electronics-brands"),
		UpstreamTimeout:         getDuration("UPSTREAM_TIMEOUT", 0),

		SeedOnStart: getBool("SEED_ON_START", false),
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s MONGO_DB=%s UPSTREAM=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.MongoDB, cfg.UpstreamBaseURL, cfg.LogFile)
	return cfg
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
