package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/example/mely/internal/handlers"
	"github.com/example/mely/internal/middleware"
	"github.com/example/mely/internal/services"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Catalog *services.CatalogService
	Orders  *services.OrderService
	Finance *services.FinanceService
	Auth    *services.AuthService
	Ping    func() error
}

// Options tunes the global middleware stack.
type Options struct {
	CORSOrigins string
	AccessLog   bool
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, svc Services, opts Options) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestContext())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	if opts.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	healthHandler := handlers.NewHealthHandler(svc.Ping)
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	orderHandler := handlers.NewOrderHandler(svc.Orders)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	adminHandler := handlers.NewAdminHandler(svc.Catalog, svc.Orders, svc.Finance)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Storefront routes
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/categories/:category/products", catalogHandler.ListCategoryProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/products/:id/quote", catalogHandler.Quote)
	api.Post("/orders", orderHandler.CreateOrder)

	// Admin routes
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	requireAdmin := middleware.AdminAuth(svc.Auth)
	admin.Post("/logout", requireAdmin, authHandler.Logout)
	admin.Get("/dashboard", requireAdmin, adminHandler.Dashboard)
	admin.Get("/products", requireAdmin, adminHandler.ListProducts)
	admin.Post("/products", requireAdmin, adminHandler.CreateProduct)
	admin.Delete("/products/:id", requireAdmin, adminHandler.DeleteProduct)
	admin.Get("/orders", requireAdmin, adminHandler.ListOrders)
	admin.Post("/orders/:id/status", requireAdmin, adminHandler.UpdateOrderStatus)
	admin.Get("/finance", requireAdmin, adminHandler.Finance)
}
