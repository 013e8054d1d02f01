package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
)

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a gesture from the gesture set",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	path := settings.GesturesPath()
	set, err := gestures.Load(path)
	if err != nil {
		return err
	}

	set, found := gestures.Remove(set, args[0])
	if !found {
		return fmt.Errorf("gesture not found: %s", args[0])
	}
	if err := gestures.Save(path, set); err != nil {
		return fmt.Errorf("failed to save gestures: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed gesture: %s\n", args[0])
	return nil
}
