package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List all workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		workouts, err := tr.Workouts(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts yet. Create one with `forja new-workout`.")
			return nil
		}

		bold := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, w := range workouts {
			fmt.Printf("  %s (%s)", bold(w.Name), w.ID)
			if w.Description != "" {
				fmt.Printf(" - %s", w.Description)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
}
