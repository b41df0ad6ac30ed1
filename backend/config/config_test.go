package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SEED_QUESTIONS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "quiz_test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Contains(t, cfg.PostgresDSN(), "host=db")
	assert.Contains(t, cfg.PostgresDSN(), "dbname=quiz_test")
}
