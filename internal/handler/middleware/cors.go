package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/RostislavK636/B2B-marketplace/internal/config"
)

// CORSMiddleware configures CORS for the browser frontend. Credentials stay
// enabled because authentication rides on a cookie, so origins must be
// explicit rather than a wildcard.
func CORSMiddleware(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	})
}
