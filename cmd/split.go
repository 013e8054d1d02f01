package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/dataset"
)

var (
	splitTestPerClass int
	splitMinClass     int
	splitSeed         int64
)

var splitCmd = &cobra.Command{
	Use:   "split SRC TRAIN TEST",
	Short: "Split a labelled stroke dataset into train and test sets",
	Args:  cobra.ExactArgs(3),
	RunE:  splitDataset,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVar(&splitTestPerClass, "test-per-class", 0, "test files per class (default from settings)")
	splitCmd.Flags().IntVar(&splitMinClass, "min-class", 0, "skip classes with fewer files (default from settings)")
	splitCmd.Flags().Int64Var(&splitSeed, "seed", 0, "random seed (default from settings)")
}

func splitDataset(cmd *cobra.Command, args []string) error {
	opts := dataset.SplitOptions{
		TestPerClass: settings.Dataset.TestPerClass,
		MinClassSize: settings.Dataset.MinClassSize,
		Seed:         settings.Dataset.Seed,
	}
	if cmd.Flags().Changed("test-per-class") {
		opts.TestPerClass = splitTestPerClass
	}
	if cmd.Flags().Changed("min-class") {
		opts.MinClassSize = splitMinClass
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = splitSeed
	}

	summary, err := dataset.Split(args[0], args[1], args[2], opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	train, test := 0, 0
	for _, c := range summary.Classes {
		train += c.Train
		test += c.Test
	}
	fmt.Fprintf(out, "Split %d class(es): %d train, %d test\n", len(summary.Classes), train, test)
	for _, label := range summary.Skipped {
		logger.Warnf("Skipped class '%s': fewer than %d files", label, opts.MinClassSize)
	}
	return nil
}
