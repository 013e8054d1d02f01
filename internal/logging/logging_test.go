package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThatOtherAndrew/unistroke/internal/config"
)

func TestNewWritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "logs", "unistroke.log")

	log, closeFn, err := newWithOutput(config.LogSettings{Level: "debug", File: file, MaxSize: 1}, &console, false)
	require.NoError(t, err)

	log.Debug("Loaded 3 gesture(s)")
	require.NoError(t, closeFn())

	assert.Contains(t, console.String(), "Loaded 3 gesture(s)")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded 3 gesture(s)")
}

func TestNewFallsBackToInfo(t *testing.T) {
	var console bytes.Buffer
	log, closeFn, err := newWithOutput(config.LogSettings{Level: "chatty"}, &console, false)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	assert.Empty(t, console.String())
}

func TestPreset(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	logrus.SetLevel(logrus.InfoLevel)
	Preset("")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	Preset("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Preset("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	assert.False(t, logrus.IsLevelEnabled(logrus.InfoLevel))
}
