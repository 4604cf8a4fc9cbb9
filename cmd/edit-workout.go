package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/rpc"
)

var (
	editWorkoutName string
	editWorkoutDesc string
)

var editWorkoutCmd = &cobra.Command{
	Use:   "edit-workout [workout-id]",
	Short: "Update a workout's name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if editWorkoutName == "" && editWorkoutDesc == "" {
			return fmt.Errorf("nothing to update: pass --name and/or --description")
		}

		tr, err := newTracker()
		if err != nil {
			return err
		}

		params := rpc.UpdateWorkoutParams{WorkoutID: args[0]}
		if editWorkoutName != "" {
			params.Name = &editWorkoutName
		}
		if editWorkoutDesc != "" {
			params.Description = &editWorkoutDesc
		}

		if err := tr.UpdateWorkout(cmd.Context(), params); err != nil {
			return fmt.Errorf("Failed to update workout: %w", err)
		}

		fmt.Println("✅ Workout updated")
		return nil
	},
}

func init() {
	editWorkoutCmd.Flags().StringVarP(&editWorkoutName, "name", "n", "", "New workout name")
	editWorkoutCmd.Flags().StringVarP(&editWorkoutDesc, "description", "d", "", "New workout description")
	rootCmd.AddCommand(editWorkoutCmd)
}
