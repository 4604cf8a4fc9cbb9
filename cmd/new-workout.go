package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/rpc"
)

var (
	newWorkoutName string
	newWorkoutDesc string
)

var newWorkoutCmd = &cobra.Command{
	Use:   "new-workout",
	Short: "Create a new workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		id, err := tr.CreateWorkout(cmd.Context(), rpc.CreateWorkoutParams{
			Name:        newWorkoutName,
			Description: newWorkoutDesc,
		})
		if err != nil {
			return fmt.Errorf("Failed to create workout: %w", err)
		}

		fmt.Printf("✅ Created workout %s (%s)\n", newWorkoutName, id)
		return nil
	},
}

func init() {
	newWorkoutCmd.Flags().StringVarP(&newWorkoutName, "name", "n", "", "Workout name")
	newWorkoutCmd.Flags().StringVarP(&newWorkoutDesc, "description", "d", "", "Workout description")
	newWorkoutCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(newWorkoutCmd)
}
