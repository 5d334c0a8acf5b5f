package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/example/mely/internal/database"
	"github.com/example/mely/internal/events"
	"github.com/example/mely/internal/handlers"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/internal/routes"
	"github.com/example/mely/internal/services"
	"github.com/example/mely/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server which provides:
- storefront catalog and checkout endpoints
- the admin console API (products, orders, finance)
- order notifications to Telegram and Kafka when configured`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, log, db, err := bootstrap(database.Options{Migrate: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	publisher := events.New(cfg.KafkaBrokers, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("closing event publisher failed", logger.Error(err))
		}
	}()

	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, log)

	products := repository.NewProductStore(db)
	orders := repository.NewOrderStore(db)
	admins := repository.NewAdminStore(db)

	svc := routes.Services{
		Catalog: services.NewCatalogService(products, log),
		Orders:  services.NewOrderService(orders, products, publisher, telegram, log),
		Finance: services.NewFinanceService(orders),
		Auth:    services.NewAuthService(admins, cfg.JWTSecret, cfg.TokenExpires, log),
		Ping:    func() error { return database.Ping(db) },
	}

	app := fiber.New(fiber.Config{
		AppName:      "Mely Backend",
		ErrorHandler: handlers.ErrorHandler(log),
	})
	routes.Register(app, svc, routes.Options{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   !cfg.Production(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.String("port", cfg.AppPort), logger.String("env", cfg.AppEnv))
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
