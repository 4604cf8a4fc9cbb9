package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/models"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session, optionally refreshing until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if statusWatch {
			return tr.WatchActiveSession(ctx, func(s *models.Session) error {
				printStatus(s)
				fmt.Println()
				return nil
			})
		}

		s, err := tr.ActiveSession(ctx)
		if err != nil {
			return fmt.Errorf("Failed to load active session: %w", err)
		}
		printStatus(s)
		return nil
	},
}

func printStatus(s *models.Session) {
	if s == nil {
		fmt.Println("No active session.")
		return
	}
	printSession(s)
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Keep polling the active session")
	rootCmd.AddCommand(statusCmd)
}
