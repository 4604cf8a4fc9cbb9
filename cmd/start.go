package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/rpc"
)

var (
	startWorkout string
	startCycle   string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a session from a workout, a cycle, or ad hoc with no flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		var p rpc.StartSessionParams
		if startWorkout != "" {
			p.WorkoutID = &startWorkout
		}
		if startCycle != "" {
			p.CycleID = &startCycle
		}

		s, err := tr.StartSession(cmd.Context(), p)
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		fmt.Printf("✅ Session started (%s)\n", s.ID)
		for _, g := range s.Groups {
			for _, item := range g.Items {
				fmt.Printf("  %s %s  (item %s)\n", item.GroupLabel, item.ExerciseName, item.ID)
			}
		}
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startWorkout, "workout", "w", "", "Workout to base the session on")
	startCmd.Flags().StringVarP(&startCycle, "cycle", "c", "", "Cycle this session counts toward")
	rootCmd.AddCommand(startCmd)
}
