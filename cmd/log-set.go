package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/models"
	"github.com/vportela/forja/internal/rpc"
)

var (
	logSetSession string
	logSetReps    int
	logSetWeight  float32
)

var logSetCmd = &cobra.Command{
	Use:   "log-set [session-item-id]",
	Short: "Log a set against an item of the active session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		sessionID := logSetSession
		if sessionID == "" {
			active, err := tr.ActiveSession(ctx)
			if err != nil {
				return fmt.Errorf("Failed to find active session: %w", err)
			}
			if active == nil {
				return errors.New("no active session; start one or pass --session")
			}
			sessionID = active.ID
		}

		err = tr.LogSet(ctx, sessionID, rpc.LogSetParams{
			SessionItemID: args[0],
			Reps:          logSetReps,
			Weight:        logSetWeight,
		})
		if err != nil {
			return fmt.Errorf("Failed to log set: %w", err)
		}

		fmt.Printf("✅ Logged %dx%.1f kg (%.1f kg volume)\n", logSetReps, logSetWeight, models.SetVolume(logSetReps, logSetWeight))
		return nil
	},
}

func init() {
	logSetCmd.Flags().StringVarP(&logSetSession, "session", "s", "", "Session id (defaults to the active session)")
	logSetCmd.Flags().IntVarP(&logSetReps, "reps", "r", 0, "Reps performed")
	logSetCmd.Flags().Float32VarP(&logSetWeight, "weight", "w", 0, "Weight in kg")
	logSetCmd.MarkFlagRequired("reps")
	logSetCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(logSetCmd)
}
