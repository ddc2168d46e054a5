package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fatihpirim/PatriotHacks/internal/metrics"
	"github.com/fatihpirim/PatriotHacks/internal/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every page with its group name",
	Long:  `Prints one line per page. Groups without pages are not listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		svc := service.NewGroupService(store, metrics.New(prometheus.NewRegistry()))
		rows, err := svc.PageReport(cmd.Context())
		if err != nil {
			return err
		}
		for _, row := range rows {
			fmt.Fprintln(cmd.OutOrStdout(), row.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
