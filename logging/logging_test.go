package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dylan/matchdrag/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	l, err := New(config.LogConfig{}, true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.log")
	l, err := New(config.LogConfig{File: path, Level: "warn"}, false)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	l.Warn("gesture rejected")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"gesture rejected"`)
}

func TestVerboseOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	l, err := New(config.LogConfig{File: path, Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	assert.Error(t, err)
}
