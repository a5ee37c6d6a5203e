package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cookbook-manager/config"
	"cookbook-manager/cookbook"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.Database{Path: filepath.Join(t.TempDir(), "cookbooks.db")},
		Demo:     config.Demo{BorrowCookbookID: 2, Friend: "Willow", PhotoshootCookbookID: 3},
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(cfg, &out, zap.NewNop())
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RunsDemo(t *testing.T) {
	out, err := run(t, testConfig(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Tracking a borrowed cookbook...")
	assert.Contains(t, out, "Willow borrowed cookbook ID 2 on ")
	assert.Contains(t, out, "Cookbook not found!")
	assert.Contains(t, out, "Database connection closed.")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := run(t, testConfig(t), "extra")
	assert.Error(t, err)
}

func TestBorrowThenList(t *testing.T) {
	cfg := testConfig(t)

	out, err := run(t, cfg, "borrow", "4", "Juniper", "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Juniper borrowed cookbook ID 4 on 2025-03-01.")

	out, err = run(t, cfg, "borrows", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Juniper")
	assert.Contains(t, out, "out on loan")
}

func TestBorrow_EmptyFriend(t *testing.T) {
	out, err := run(t, testConfig(t), "borrow", "4", "", "2025-03-01")

	assert.True(t, errors.Is(err, cookbook.ErrInvalidBorrow))
	assert.Contains(t, out, "Friend name and borrow date are required!")
}

func TestPhotoshoot(t *testing.T) {
	cfg := testConfig(t)
	db, err := cookbook.NewDatabase(cfg.Database.Path)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema())
	_, err = db.AddCookbook(&cookbook.Cookbook{Title: "Indigo Kitchen", Author: "Sky Lark", AestheticRating: 2, CoverColor: "Denim"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := run(t, cfg, "photoshoot", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "🎨 Suggested Photo Angles: Flat Lay, Close-up Shot\n")
	assert.Contains(t, out, "🌿 Recommended Props: Rustic Backdrop, Mason Jars\n")

	out, err = run(t, cfg, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Indigo Kitchen")
}

func TestPhotoshoot_InvalidID(t *testing.T) {
	_, err := run(t, testConfig(t), "photoshoot", "three")
	assert.EqualError(t, err, "invalid cookbook ID: three")
}
