package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fatihpirim/PatriotHacks/internal/storage"
)

var initDBSample bool

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database tables, optionally with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "Database and tables created successfully!")

		if !initDBSample {
			return nil
		}
		if err := store.Seed(cmd.Context()); err != nil {
			if errors.Is(err, storage.ErrDuplicateGroup) {
				return fmt.Errorf("sample data already present: %w", err)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sample data inserted successfully!")
		return nil
	},
}

func init() {
	initDBCmd.Flags().BoolVar(&initDBSample, "sample", false, "insert two sample groups with three pages")
	rootCmd.AddCommand(initDBCmd)
}
