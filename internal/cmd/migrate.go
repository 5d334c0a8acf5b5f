package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mely/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, log, _, err := bootstrap(database.Options{Migrate: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("schema is up to date")
	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
