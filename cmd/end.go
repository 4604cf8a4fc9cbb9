package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var endSession string

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish the active session and show its totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		sessionID := endSession
		if sessionID == "" {
			active, err := tr.ActiveSession(ctx)
			if err != nil {
				return fmt.Errorf("Failed to find active session: %w", err)
			}
			if active == nil {
				return errors.New("no active session")
			}
			sessionID = active.ID
		}

		s, err := tr.FinishSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("Failed to finish session: %w", err)
		}

		sets := 0
		for _, g := range s.Groups {
			for _, item := range g.Items {
				sets += len(item.Sets)
			}
		}

		duration := "?"
		if s.FinishedAt != nil {
			duration = s.FinishedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		fmt.Printf("✅ Session finished: %d sets, %.1f kg total volume in %s\n", sets, s.TotalVolume, duration)
		return nil
	},
}

func init() {
	endCmd.Flags().StringVarP(&endSession, "session", "s", "", "Session id (defaults to the active session)")
	rootCmd.AddCommand(endCmd)
}
