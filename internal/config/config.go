package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

type Settings struct {
	// Gestures is the gesture set file. Empty means DefaultGesturesPath.
	Gestures   string             `toml:"gestures"`
	Recogniser RecogniserSettings `toml:"recogniser"`
	Log        LogSettings        `toml:"log"`
	Dataset    DatasetSettings    `toml:"dataset"`
	Server     ServerSettings     `toml:"server"`
	History    HistorySettings    `toml:"history"`
}

type RecogniserSettings struct {
	SeedTemplates bool    `toml:"seed_templates"`
	MinScore      float64 `toml:"min_score"`
}

type LogSettings struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

type DatasetSettings struct {
	TestPerClass int   `toml:"test_per_class"`
	MinClassSize int   `toml:"min_class_size"`
	Seed         int64 `toml:"seed"`
}

type ServerSettings struct {
	Addr           string `toml:"addr"`
	RequestTimeout string `toml:"request_timeout"`
}

// Timeout parses RequestTimeout. Validate guarantees it parses.
func (s ServerSettings) Timeout() time.Duration {
	d, err := time.ParseDuration(s.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

type HistorySettings struct {
	Path string `toml:"path"`
}

func Defaults() *Settings {
	return &Settings{
		Recogniser: RecogniserSettings{
			SeedTemplates: true,
			MinScore:      0.6,
		},
		Log: LogSettings{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Dataset: DatasetSettings{
			TestPerClass: 10,
			MinClassSize: 10,
			Seed:         42,
		},
		Server: ServerSettings{
			Addr:           "127.0.0.1:5176",
			RequestTimeout: "10s",
		},
	}
}

// Load reads the settings file at path, or DefaultConfigPath when path is
// empty. A missing file is created with defaults. A file that fails to
// parse is reported and ignored.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	defaults := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("Creating default settings file at %s", path)
			if err := Write(path, defaults); err != nil {
				logrus.Warnf("Failed to create default settings file: %v", err)
			}
			return finish(defaults), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := Defaults()
	md, err := toml.Decode(string(data), settings)
	if err != nil {
		logrus.Warnf("Invalid settings file, using defaults: %v", err)
		return finish(defaults), nil
	}
	for _, key := range md.Undecoded() {
		logrus.Warnf("Unrecognised setting key '%s' in settings file", key.String())
	}

	return finish(settings), nil
}

func finish(s *Settings) *Settings {
	applyEnv(s)
	s.Validate()
	return s
}

// Write encodes settings as TOML at path, creating parent directories.
func Write(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func applyEnv(s *Settings) {
	if v := os.Getenv("UNISTROKE_LOG_LEVEL"); v != "" {
		s.Log.Level = v
	}
	if v := os.Getenv("UNISTROKE_SERVER_ADDR"); v != "" {
		s.Server.Addr = v
	}
	if v := os.Getenv("UNISTROKE_GESTURES"); v != "" {
		s.Gestures = v
	}
}

// Validate replaces out-of-range values with their defaults, logging each
// replacement.
func (s *Settings) Validate() {
	d := Defaults()

	if s.Recogniser.MinScore < 0.0 || s.Recogniser.MinScore > 1.0 {
		logrus.Warnf("Invalid min_score value %.2f, must be between 0.0 and 1.0, using default %.2f",
			s.Recogniser.MinScore, d.Recogniser.MinScore)
		s.Recogniser.MinScore = d.Recogniser.MinScore
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		logrus.Warnf("Invalid log level '%s', using default '%s'", s.Log.Level, d.Log.Level)
		s.Log.Level = d.Log.Level
	}
	s.Log.Level = strings.ToLower(s.Log.Level)
	if s.Dataset.TestPerClass <= 0 {
		logrus.Warnf("Invalid test_per_class value %d, using default %d", s.Dataset.TestPerClass, d.Dataset.TestPerClass)
		s.Dataset.TestPerClass = d.Dataset.TestPerClass
	}
	if s.Dataset.MinClassSize < s.Dataset.TestPerClass {
		logrus.Warnf("min_class_size %d is below test_per_class %d, using %d",
			s.Dataset.MinClassSize, s.Dataset.TestPerClass, s.Dataset.TestPerClass)
		s.Dataset.MinClassSize = s.Dataset.TestPerClass
	}
	if timeout, err := time.ParseDuration(s.Server.RequestTimeout); err != nil || timeout <= 0 {
		logrus.Warnf("Invalid request_timeout '%s', using default '%s'", s.Server.RequestTimeout, d.Server.RequestTimeout)
		s.Server.RequestTimeout = d.Server.RequestTimeout
	}
}

// GesturesPath resolves the gesture set file.
func (s *Settings) GesturesPath() string {
	if s.Gestures != "" {
		return s.Gestures
	}
	return DefaultGesturesPath()
}

// HistoryPath resolves the run history database.
func (s *Settings) HistoryPath() string {
	if s.History.Path != "" {
		return s.History.Path
	}
	return DefaultHistoryPath()
}
