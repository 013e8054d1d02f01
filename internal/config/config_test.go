package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, `
gestures = "/tmp/g.yaml"

[recogniser]
min_score = 0.8

[server]
request_timeout = "3s"
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/g.yaml", s.GesturesPath())
	assert.Equal(t, 0.8, s.Recogniser.MinScore)
	assert.True(t, s.Recogniser.SeedTemplates)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, 3*time.Second, s.Server.Timeout())
	assert.Equal(t, int64(42), s.Dataset.Seed)
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := writeFile(t, `
colour = "red"

[log]
level = "debug"
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadInvalidFileFallsBack(t *testing.T) {
	path := writeFile(t, "[recogniser\nmin_score = ")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestValidateClamps(t *testing.T) {
	s := Defaults()
	s.Recogniser.MinScore = 1.5
	s.Log.Level = "loud"
	s.Dataset.TestPerClass = 0
	s.Dataset.MinClassSize = 2
	s.Server.RequestTimeout = "soon"
	s.Validate()

	d := Defaults()
	assert.Equal(t, d.Recogniser.MinScore, s.Recogniser.MinScore)
	assert.Equal(t, d.Log.Level, s.Log.Level)
	assert.Equal(t, d.Dataset.TestPerClass, s.Dataset.TestPerClass)
	assert.Equal(t, d.Dataset.TestPerClass, s.Dataset.MinClassSize)
	assert.Equal(t, d.Server.RequestTimeout, s.Server.RequestTimeout)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UNISTROKE_LOG_LEVEL", "WARN")
	t.Setenv("UNISTROKE_SERVER_ADDR", ":9000")
	t.Setenv("UNISTROKE_GESTURES", "/srv/gestures.json")

	s, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, ":9000", s.Server.Addr)
	assert.Equal(t, "/srv/gestures.json", s.GesturesPath())
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	cfg := t.TempDir()
	data := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_DATA_HOME", data)

	assert.Equal(t, filepath.Join(cfg, "unistroke", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(cfg, "unistroke", "gestures.json"), DefaultGesturesPath())
	assert.Equal(t, filepath.Join(data, "unistroke", "history.db"), Defaults().HistoryPath())
}
