package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear every cached query, in memory and on disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newTracker()
		if err != nil {
			return err
		}

		if err := tr.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("Failed to clear cache: %w", err)
		}

		fmt.Println("✅ Cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
