package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [workout-id]",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		if err := tr.DeleteWorkout(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}

		fmt.Println("✅ Workout deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
