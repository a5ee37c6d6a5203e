package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, int64(2), cfg.Demo.BorrowCookbookID)
	assert.Equal(t, "Willow", cfg.Demo.Friend)
	assert.Equal(t, int64(3), cfg.Demo.PhotoshootCookbookID)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("COOKBOOKS_DATABASE_PATH", "/tmp/shelf.db")
	t.Setenv("COOKBOOKS_LOG_LEVEL", "debug")
	t.Setenv("COOKBOOKS_DEMO_FRIEND", "Juniper")
	t.Setenv("COOKBOOKS_DEMO_PHOTOSHOOT_COOKBOOK_ID", "7")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/shelf.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Juniper", cfg.Demo.Friend)
	assert.Equal(t, int64(7), cfg.Demo.PhotoshootCookbookID)
	assert.Equal(t, int64(2), cfg.Demo.BorrowCookbookID)
}
