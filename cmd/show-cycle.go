package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCycleCmd = &cobra.Command{
	Use:   "show-cycle [cycle-id]",
	Short: "Show a cycle's plan and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		c, err := tr.Cycle(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to load cycle: %w", err)
		}

		header := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(header(c.WorkoutName))
		fmt.Printf("  %d weeks: %s to %s\n", c.DurationWeeks, c.StartDate.Format("02/01/06"), c.EndDate().Format("02/01/06"))
		fmt.Printf("  %d sessions completed\n", c.CompletedSessions)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCycleCmd)
}
