package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/dataset"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert XML gesture logs into labelled CSV stroke logs",
	Args:  cobra.ExactArgs(2),
	RunE:  convertDataset,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func convertDataset(cmd *cobra.Command, args []string) error {
	n, err := dataset.ConvertXML(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d file(s) into %s\n", n, args[1])
	return nil
}
