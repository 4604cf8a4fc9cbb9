package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-id]",
	Short: "Show an exercise's set history across sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		history, err := tr.ExerciseHistory(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to load exercise history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No sets logged for this exercise yet.")
			return nil
		}

		for _, entry := range history {
			fmt.Printf("  %s  %dx%.1f kg  (%.1f kg)\n",
				entry.CompletedAt.Format("02/01/06"), entry.Reps, entry.Weight, entry.Volume)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
}
