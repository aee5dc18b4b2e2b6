package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Postgres.QueryTimeout)
	assert.False(t, cfg.Postgres.ApplySchema)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("POSTGRES_QUERY_TIMEOUT", "250ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("POSTGRES_APPLY_SCHEMA", "true")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := LoadEnv()

	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, 250*time.Millisecond, cfg.Postgres.QueryTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Postgres.ApplySchema)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
}
