package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/config"
	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/logging"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

var (
	cfgFile  string
	logLevel string

	settings *config.Settings
	logger   *logrus.Logger
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:                "unistroke",
	Short:              "Recognise single-stroke gestures",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeLog() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default $XDG_CONFIG_HOME/unistroke/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if cmd.Flags().Changed("log-level") {
		logging.Preset(logLevel)
	} else {
		logging.Preset(os.Getenv("UNISTROKE_LOG_LEVEL"))
	}
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		s.Log.Level = logLevel
		s.Validate()
	}

	l, closeFn, err := logging.New(s.Log)
	if err != nil {
		return err
	}
	settings, logger, closeLog = s, l, closeFn
	return nil
}

// loadRecogniser builds a recogniser from the gesture set at path, on top of
// the built-in templates when seeds is set.
func loadRecogniser(path string, seeds bool) (*stroke.Recogniser, []models.Gesture, error) {
	set, err := gestures.Load(path)
	if err != nil {
		return nil, nil, err
	}
	rec := stroke.New(stroke.WithSeedTemplates(seeds), stroke.WithLogger(logger))
	added, rejected := gestures.Register(rec, set, logger)
	logger.Debugf("Loaded %d gesture(s) from %s: %d stroke(s) added, %d rejected", len(set), path, added, rejected)
	return rec, set, nil
}
