package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRIPPLANNER_HTTP_ADDR", "")
	t.Setenv("TRIPPLANNER_REDIS_ADDR", "")
	t.Setenv("TRIPPLANNER_GEMINI_MODEL", "")
	t.Setenv("TRIPPLANNER_CORS_ORIGINS", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.NotEmpty(t, cfg.CORS.Origins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TRIPPLANNER_HTTP_ADDR", ":9090")
	t.Setenv("TRIPPLANNER_CORS_ORIGINS", "https://planner.example.com, https://staging.example.com")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://planner.example.com", "https://staging.example.com"}, cfg.CORS.Origins)
}
