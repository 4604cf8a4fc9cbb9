package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vportela/forja/internal/models"
	"github.com/vportela/forja/internal/rpc"
)

var (
	addGroupName string
	addGroupType string
	addGroupRest int
)

var addGroupCmd = &cobra.Command{
	Use:   "add-group [workout-id]",
	Short: "Add a group (single/superset/triset/circuit) to a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidGroupType(addGroupType) {
			return fmt.Errorf("invalid group type %q: must be single, superset, triset or circuit", addGroupType)
		}

		tr, err := newTracker()
		if err != nil {
			return err
		}

		id, err := tr.AddWorkoutGroup(cmd.Context(), rpc.AddWorkoutGroupParams{
			WorkoutID:   args[0],
			Name:        addGroupName,
			GroupType:   addGroupType,
			RestSeconds: addGroupRest,
		})
		if err != nil {
			return fmt.Errorf("Failed to add group: %w", err)
		}

		fmt.Printf("✅ Added group %s (%s)\n", addGroupName, id)
		return nil
	},
}

func init() {
	addGroupCmd.Flags().StringVarP(&addGroupName, "name", "n", "", "Group name")
	addGroupCmd.Flags().StringVarP(&addGroupType, "type", "t", models.GroupSingle, "Group type")
	addGroupCmd.Flags().IntVarP(&addGroupRest, "rest", "r", 90, "Default rest between sets in seconds")
	addGroupCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addGroupCmd)
}
