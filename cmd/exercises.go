package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		exercises, err := tr.Exercises(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to load exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises yet.")
			return nil
		}

		name := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, e := range exercises {
			line := fmt.Sprintf("%s  [%s]  (%s)", name(e.Name), e.Category, e.ID)
			if e.TimesUsed > 0 {
				line += fmt.Sprintf("  used %d times", e.TimesUsed)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}
