package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/dataset"
	"github.com/ThatOtherAndrew/unistroke/internal/execute"
	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/internal/report"
)

var (
	recogniseExec     bool
	recogniseGestures string
	recogniseNoSeed   bool
)

var recogniseCmd = &cobra.Command{
	Use:     "recognise FILE",
	Aliases: []string{"recognize"},
	Short:   "Recognise the stroke in a CSV log or JSON point list",
	Args:    cobra.ExactArgs(1),
	RunE:    recognise,
}

func init() {
	rootCmd.AddCommand(recogniseCmd)

	recogniseCmd.Flags().BoolVar(&recogniseExec, "exec", false, "run the command bound to the recognised gesture")
	recogniseCmd.Flags().StringVar(&recogniseGestures, "gestures", "", "gesture set file (default from settings)")
	recogniseCmd.Flags().BoolVar(&recogniseNoSeed, "no-seed", false, "skip the built-in templates")
}

func recognise(cmd *cobra.Command, args []string) error {
	points, err := dataset.ReadStroke(args[0])
	if err != nil {
		return err
	}

	path := settings.GesturesPath()
	if recogniseGestures != "" {
		path = recogniseGestures
	}
	rec, set, err := loadRecogniser(path, settings.Recogniser.SeedTemplates && !recogniseNoSeed)
	if err != nil {
		return err
	}

	start := time.Now()
	m, ok := rec.Recognise(models.ToStroke(points))
	report.New(cmd.OutOrStdout()).Match(m, ok, time.Since(start))

	if !ok || !recogniseExec {
		return nil
	}
	if m.Score < settings.Recogniser.MinScore {
		logger.Infof("Score %.2f is below min_score %.2f, not executing", m.Score, settings.Recogniser.MinScore)
		return nil
	}
	g, found := gestures.Find(set, m.Template.Name)
	if !found || g.Command == "" {
		logger.Infof("No command bound to gesture '%s'", m.Template.Name)
		return nil
	}
	return execute.Command(logger, g.Command)
}
