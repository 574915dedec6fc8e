package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "skillforge.db", cfg.DBPath)
	assert.Empty(t, cfg.AdminKey)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKILLFORGE_ADDR", ":9999")
	t.Setenv("SKILLFORGE_DB_PATH", "/tmp/forge.db")
	t.Setenv("SKILLFORGE_ADMIN_KEY", "sekrit")
	t.Setenv("SKILLFORGE_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/forge.db", cfg.DBPath)
	assert.Equal(t, "sekrit", cfg.AdminKey)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("SKILLFORGE_SEED", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}
