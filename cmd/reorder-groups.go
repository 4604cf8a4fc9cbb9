package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderGroupsCmd = &cobra.Command{
	Use:   "reorder-groups [workout-id] [group-id...]",
	Short: "Reorder a workout's groups; list every group id in the new order",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		if err := tr.ReorderGroups(cmd.Context(), args[0], args[1:]); err != nil {
			return fmt.Errorf("Failed to reorder groups: %w", err)
		}

		fmt.Println("✅ Groups reordered")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reorderGroupsCmd)
}
