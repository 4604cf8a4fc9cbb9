package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showWorkoutHistory bool

var showWorkoutCmd = &cobra.Command{
	Use:   "show-workout [workout-id]",
	Short: "Show a workout's groups and items, or its session history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if showWorkoutHistory {
			history, err := tr.WorkoutHistory(ctx, args[0])
			if err != nil {
				return fmt.Errorf("Failed to load workout history: %w", err)
			}
			if len(history) == 0 {
				fmt.Println("No sessions for this workout yet.")
				return nil
			}
			for _, s := range history {
				line := fmt.Sprintf("  %s  %d sets  %.1f kg total", s.StartedAt.Format("02/01/06"), s.SetCount, s.TotalVolume)
				if s.FinishedAt == nil {
					line += "  (in progress)"
				}
				fmt.Println(line)
			}
			return nil
		}

		w, err := tr.Workout(ctx, args[0])
		if err != nil {
			return fmt.Errorf("Failed to load workout: %w", err)
		}

		header := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(header(w.Name))
		if w.Description != "" {
			fmt.Println(w.Description)
		}

		groupLabel := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, g := range w.Groups {
			fmt.Printf("\n%s [%s, rest %ds]\n", groupLabel(g.Name), g.GroupType, g.RestSeconds)
			for _, item := range g.Items {
				fmt.Printf("  %s %s", item.GroupLabel, item.ExerciseName)
				if item.TargetSets != nil && item.TargetReps != nil {
					fmt.Printf("  %dx%d", *item.TargetSets, *item.TargetReps)
				}
				if item.TargetWeight != nil {
					fmt.Printf(" @ %.1f kg", *item.TargetWeight)
				}
				if rest := item.EffectiveRest(g); rest != g.RestSeconds {
					fmt.Printf("  (rest %ds)", rest)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	showWorkoutCmd.Flags().BoolVar(&showWorkoutHistory, "history", false, "Show the workout's session history instead")
	rootCmd.AddCommand(showWorkoutCmd)
}
