package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
)

var listNoSeed bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listNoSeed, "no-seed", false, "skip the built-in templates")
}

func listGestures(cmd *cobra.Command, args []string) error {
	rec, set, err := loadRecogniser(settings.GesturesPath(), settings.Recogniser.SeedTemplates && !listNoSeed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	names := rec.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}

	counts := make(map[string]int)
	for _, t := range rec.Templates() {
		counts[t.Name]++
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, name := range names {
		line := fmt.Sprintf("   %s (%d templates)", name, counts[name])
		if g, ok := gestures.Find(set, name); ok && g.Command != "" {
			line += " -> " + g.Command
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
