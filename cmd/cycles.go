package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "List training cycles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		cycles, err := tr.Cycles(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to load cycles: %w", err)
		}
		if len(cycles) == 0 {
			fmt.Println("No cycles yet.")
			return nil
		}

		name := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, c := range cycles {
			fmt.Printf("%s  %dw from %s  %d sessions done  (%s)\n",
				name(c.WorkoutName), c.DurationWeeks, c.StartDate.Format("02/01/06"), c.CompletedSessions, c.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
}
