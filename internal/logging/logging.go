package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ThatOtherAndrew/unistroke/internal/config"
)

// New builds a logger that writes to stderr and, when cfg.File is set, to a
// rotated log file. The returned close function flushes the file writer.
func New(cfg config.LogSettings) (*logrus.Logger, func() error, error) {
	return newWithOutput(cfg, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newWithOutput(cfg config.LogSettings, console io.Writer, colors bool) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
		ForceColors:     colors,
		DisableColors:   !colors,
	})

	closeFn := func() error { return nil }
	writers := []io.Writer{console}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, fileWriter)
		closeFn = fileWriter.Close
	}
	logger.SetOutput(io.MultiWriter(writers...))

	// Packages that log through the logrus standard logger follow suit.
	logrus.SetOutput(logger.Out)
	logrus.SetLevel(level)
	logrus.SetFormatter(logger.Formatter)

	return logger, closeFn, nil
}

// Preset applies level to the logrus standard logger ahead of New, so
// messages logged while settings load respect it. An empty or unknown level
// leaves the standard logger unchanged.
func Preset(level string) {
	if l, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(l)
	}
}
