package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/history"
	"github.com/ThatOtherAndrew/unistroke/internal/report"
)

var (
	historyLimit  int
	historyMisses int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded evaluation runs",
	Args:  cobra.NoArgs,
	RunE:  showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of runs to show (0 for all)")
	historyCmd.Flags().Int64Var(&historyMisses, "misses", 0, "list the misclassified samples of a run")
}

func showHistory(cmd *cobra.Command, args []string) error {
	st, err := history.Open(settings.HistoryPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	if historyMisses > 0 {
		misses, err := st.Misses(cmd.Context(), historyMisses)
		if err != nil {
			return err
		}
		for _, m := range misses {
			predicted := m.Predicted
			if predicted == "" {
				predicted = "(rejected)"
			}
			fmt.Fprintf(out, "%s\t%s -> %s (%.2f)\n", m.Path, m.Label, predicted, m.Score)
		}
		return nil
	}

	runs, err := st.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	report.New(out).Runs(runs)
	return nil
}
