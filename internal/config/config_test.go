package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_DSN", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT", "SEED_ON_START"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "catalog.db", cfg.DBDSN)
	assert.Equal(t, "http://interview.surya-digital.in", cfg.UpstreamBaseURL)
	assert.Equal(t, "/get-electronics", cfg.UpstreamElectronicsPath)
	assert.Equal(t, "/get-electronics-brands", cfg.UpstreamBrandsPath)
	assert.Zero(t, cfg.UpstreamTimeout)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("SEED_ON_START", "true")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongo", cfg.DBDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.SeedOnStart)
}

func TestGetDurationAcceptsSeconds(t *testing.T) {
	t.Setenv("X_TIMEOUT", "7")
	assert.Equal(t, 7*time.Second, getDuration("X_TIMEOUT", 0))
	t.Setenv("X_TIMEOUT", "junk")
	assert.Equal(t, time.Minute, getDuration("X_TIMEOUT", time.Minute))
}
