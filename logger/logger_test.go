package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cookbook-manager/config"
)

func TestNewLogger_Level(t *testing.T) {
	log := NewLogger(config.Log{Level: "debug"}, "test", false)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	log = NewLogger(config.Log{Level: "not-a-level"}, "test", false)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cookbooks.log")

	log := NewLogger(config.Log{Level: "info", File: path}, "test", false)
	log.Info("borrow recorded", zap.String("friend", "Willow"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"borrow recorded"`)
	assert.Contains(t, string(data), `"friend":"Willow"`)
}

func TestNewRotatingWriter_Defaults(t *testing.T) {
	w := NewRotatingWriter(config.Log{File: "x.log"})
	assert.Equal(t, 10, w.MaxSize)
	assert.Equal(t, 5, w.MaxBackups)
}
