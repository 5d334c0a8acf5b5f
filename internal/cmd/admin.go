package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mely/internal/database"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/internal/services"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin console accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE:  createAdmin,
}

func init() {
	adminCreateCmd.Flags().String("email", "", "login email")
	adminCreateCmd.Flags().String("password", "", "password, at least 8 characters")
	adminCreateCmd.Flags().String("name", "", "display name (defaults to the email)")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}

func createAdmin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	name, _ := cmd.Flags().GetString("name")

	cfg, log, db, err := bootstrap(database.Options{Migrate: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	authService := services.NewAuthService(repository.NewAdminStore(db), cfg.JWTSecret, cfg.TokenExpires, log)
	admin, err := authService.CreateAdmin(cmd.Context(), email, password, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", admin.Email, admin.ID)
	return nil
}
