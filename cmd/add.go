package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/dataset"
	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/pkg/stroke"
)

var addCommand string

var addCmd = &cobra.Command{
	Use:   "add NAME FILE",
	Short: "Add a stroke to a gesture in the gesture set",
	Args:  cobra.ExactArgs(2),
	RunE:  addGesture,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addCommand, "command", "", "shell command to bind to the gesture")
}

func addGesture(cmd *cobra.Command, args []string) error {
	name, file := args[0], args[1]
	points, err := dataset.ReadStroke(file)
	if err != nil {
		return err
	}
	if _, err := stroke.Normalize(models.ToStroke(points)); err != nil {
		return fmt.Errorf("stroke in %s cannot be used as a template: %w", file, err)
	}

	path := settings.GesturesPath()
	set, err := gestures.Load(path)
	if err != nil {
		return err
	}
	set = gestures.AddStroke(set, name, addCommand, points)
	if err := gestures.Save(path, set); err != nil {
		return fmt.Errorf("failed to save gestures: %w", err)
	}

	g, _ := gestures.Find(set, name)
	logger.Infof("Gesture '%s' now has %d stroke(s)", name, len(g.Strokes))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved gesture %s to %s\n", name, path)
	return nil
}
