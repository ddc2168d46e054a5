package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fatihpirim/PatriotHacks/internal/config"
	"github.com/fatihpirim/PatriotHacks/internal/storage/sqlite"
	"github.com/fatihpirim/PatriotHacks/pkg/logging"
)

var (
	cfgFile      string
	dbPathFlag   string
	logLevelFlag string

	// cfg is populated by the root command's PersistentPreRunE.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "grouppages",
	Short: "Manage groups and their pages",
	Long: `grouppages serves a small web UI for groups and pages backed by a
SQLite file, and offers maintenance commands for the same database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("dbpath") {
			loaded.Database.Path = dbPathFlag
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Logging.Level = logLevelFlag
		}
		cfg = loaded

		logging.Setup(cfg.Logging.Level)
		slog.Debug("Configuration loaded", "database", cfg.Database.Path, "addr", cfg.Server.Addr)
		return nil
	},
}

// openStore opens the configured database, creating tables if needed.
func openStore() (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "dbpath", "", "path to SQLite database file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
