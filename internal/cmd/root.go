package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/example/mely/internal/config"
	"github.com/example/mely/internal/database"
	"github.com/example/mely/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mely",
	Short: "Mely Fashion Store backend",
	Long: `Mely serves the storefront and admin console API of the Mely Fashion Store.

Run "mely serve" to start the HTTP server, or use the maintenance commands
to migrate the schema, create admin accounts and seed the catalog.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ExecuteDefault runs the root command, falling back to serve when no
// subcommand is given.
func ExecuteDefault() {
	if len(os.Args) < 2 {
		rootCmd.SetArgs([]string{serveCmd.Name()})
	}
	Execute()
}

// bootstrap loads configuration, a logger and a database connection shared by
// every subcommand.
func bootstrap(opts database.Options) (*config.Config, logger.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.AppEnv)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	opts.Verbose = !cfg.Production()
	db, err := database.Connect(cfg.DatabaseURL, opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, log, db, nil
}
