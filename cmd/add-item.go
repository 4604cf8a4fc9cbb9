package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/rpc"
)

var (
	addItemWorkout string
	addItemSets    int
	addItemReps    int
	addItemWeight  float32
	addItemRest    int
	addItemNotes   string
)

var addItemCmd = &cobra.Command{
	Use:   "add-item [group-id] [exercise-id]",
	Short: "Add an exercise to a workout group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		p := rpc.AddWorkoutItemParams{
			GroupID:    args[0],
			ExerciseID: args[1],
			Notes:      addItemNotes,
		}
		// Unset flags stay nil so the backend keeps its defaults.
		if cmd.Flags().Changed("sets") {
			p.TargetSets = &addItemSets
		}
		if cmd.Flags().Changed("reps") {
			p.TargetReps = &addItemReps
		}
		if cmd.Flags().Changed("weight") {
			p.TargetWeight = &addItemWeight
		}
		if cmd.Flags().Changed("rest") {
			p.RestSeconds = &addItemRest
		}

		id, err := tr.AddWorkoutItem(cmd.Context(), addItemWorkout, p)
		if err != nil {
			return fmt.Errorf("Failed to add item: %w", err)
		}

		fmt.Printf("✅ Added item %s\n", id)
		return nil
	},
}

func init() {
	addItemCmd.Flags().StringVarP(&addItemWorkout, "workout", "w", "", "Workout the group belongs to")
	addItemCmd.Flags().IntVar(&addItemSets, "sets", 0, "Target sets")
	addItemCmd.Flags().IntVar(&addItemReps, "reps", 0, "Target reps per set")
	addItemCmd.Flags().Float32Var(&addItemWeight, "weight", 0, "Target weight in kg")
	addItemCmd.Flags().IntVar(&addItemRest, "rest", 0, "Rest override for this item in seconds")
	addItemCmd.Flags().StringVar(&addItemNotes, "notes", "", "Free-form notes")
	addItemCmd.MarkFlagRequired("workout")
	rootCmd.AddCommand(addItemCmd)
}
