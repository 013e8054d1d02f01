package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/dataset"
	"github.com/ThatOtherAndrew/unistroke/internal/evaluate"
	"github.com/ThatOtherAndrew/unistroke/internal/history"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/internal/report"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

var (
	evalSave     bool
	evalMinScore float64
)

var evalCmd = &cobra.Command{
	Use:   "eval TRAIN TEST",
	Short: "Measure accuracy on a test set using templates from a training set",
	Args:  cobra.ExactArgs(2),
	RunE:  evalDataset,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalSave, "save", false, "record the run in the history database")
	evalCmd.Flags().Float64Var(&evalMinScore, "min-score", 0, "score needed for a correct match (default from settings)")
}

func evalDataset(cmd *cobra.Command, args []string) error {
	trainDir, testDir := args[0], args[1]
	minScore := settings.Recogniser.MinScore
	if cmd.Flags().Changed("min-score") {
		minScore = evalMinScore
	}

	train, err := dataset.LoadDir(trainDir)
	if err != nil {
		return err
	}
	test, err := dataset.LoadDir(testDir)
	if err != nil {
		return err
	}
	if len(test) == 0 {
		return fmt.Errorf("no test samples under %s", testDir)
	}

	rec := stroke.New(stroke.WithSeedTemplates(false), stroke.WithLogger(logger))
	rejected := 0
	for _, s := range train {
		if !rec.AddTemplate(s.Label, models.ToStroke(s.Points)) {
			rejected++
		}
	}
	logger.Infof("Loaded %d training sample(s), %d rejected", len(train), rejected)

	r, err := evaluate.Run(cmd.Context(), rec, test, minScore)
	if err != nil {
		return err
	}
	report.New(cmd.OutOrStdout()).Evaluation(r)

	if !evalSave {
		return nil
	}
	st, err := history.Open(settings.HistoryPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()
	id, err := st.SaveRun(cmd.Context(), trainDir, testDir, r)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved run #%d\n", id)
	return nil
}
