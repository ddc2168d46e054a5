package main

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fatihpirim/PatriotHacks/internal/metrics"
	"github.com/fatihpirim/PatriotHacks/internal/service"
)

var deleteGroupCmd = &cobra.Command{
	Use:   "delete-group <group_id>",
	Short: "Delete a group and its pages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid group id %q: %w", args[0], err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		svc := service.NewGroupService(store, metrics.New(prometheus.NewRegistry()))
		if err := svc.DeleteGroup(cmd.Context(), groupID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Group %d and its pages deleted successfully!\n", groupID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteGroupCmd)
}
