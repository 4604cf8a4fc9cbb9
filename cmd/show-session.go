package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/models"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session [session-id]",
	Short: "Show a session with every logged set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		s, err := tr.Session(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		printSession(s)
		return nil
	},
}

func printSession(s *models.Session) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	state := "in progress"
	if s.Finished() {
		state = "finished " + s.FinishedAt.Format("02/01/06 15:04")
	}
	fmt.Printf("%s  started %s, %s\n", header("Session "+s.ID), s.StartedAt.Format("02/01/06 15:04"), state)

	groupLabel := color.New(color.FgGreen, color.Bold).SprintFunc()
	for _, g := range s.Groups {
		fmt.Printf("\n%s [%s]\n", groupLabel(g.Name), g.GroupType)
		for _, item := range g.Items {
			fmt.Printf("  %s %s\n", item.GroupLabel, item.ExerciseName)
			for _, set := range item.Sets {
				fmt.Printf("    #%d  %dx%.1f kg  (%.1f kg)\n", set.Seq, set.Reps, set.Weight, set.Volume)
			}
			if len(item.Sets) == 0 {
				fmt.Println("    (no sets yet)")
			}
		}
	}

	fmt.Printf("\nTotal volume: %.1f kg\n", s.TotalVolume)
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
