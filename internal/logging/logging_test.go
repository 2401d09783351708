package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "weekplan.log")

	logger, closer, err := New(Options{Level: "warn", Path: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("save failed", "key", "weekly_planner_tasks")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "save failed")
	assert.Contains(t, string(data), "key=weekly_planner_tasks")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekplan.log")

	logger, closer, err := New(Options{Level: "error", Path: path, Verbose: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	logger, closer, err := New(Options{Level: "loud", Path: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, log.DebugLevel)

	logger.Debug("task created", "id", "abc")
	assert.Contains(t, buf.String(), "task created")
	assert.Contains(t, buf.String(), "id=abc")
}
