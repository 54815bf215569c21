package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	sellerHandler *SellerHandler,
	productHandler *ProductHandler,
	healthHandler *HealthHandler,
	requireSession fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// API v1
	api := app.Group("/api/v1")

	// Authentication surface (public)
	auth := api.Group("/auth")
	auth.Get("/", authHandler.Auth)
	auth.Post("/logout", authHandler.Logout)

	api.Post("/login", authHandler.Login)
	api.Post("/registration", authHandler.Register)

	// Seller routes
	sellers := api.Group("/sellers")
	sellers.Get("/current", requireSession, sellerHandler.Current)
	sellers.Get("/", sellerHandler.List)
	sellers.Delete("/", requireSession, sellerHandler.Delete)

	// Product routes (seller-scoped)
	products := api.Group("/products", requireSession)
	products.Post("/", productHandler.Save)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Delete("/:id", productHandler.Delete)
	products.Delete("/", productHandler.DeleteAll)
}
