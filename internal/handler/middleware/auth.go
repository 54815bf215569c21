package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RostislavK636/B2B-marketplace/internal/service"
)

// Locals keys populated by RequireSession.
const (
	LocalSellerID    = "seller_id"
	LocalSellerEmail = "seller_email"
	LocalToken       = "session_token"
)

// RequireSession resolves the session cookie into a caller identity and
// rejects the request with 401 before any downstream handler runs.
func RequireSession(auth *service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)

		identity, err := auth.Resolve(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "unauthorized",
			})
		}

		c.Locals(LocalSellerID, identity.SellerID)
		c.Locals(LocalSellerEmail, identity.SellerEmail)
		c.Locals(LocalToken, token)

		return c.Next()
	}
}

// SellerID returns the caller's seller ID stored by RequireSession.
func SellerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalSellerID).(int64)
	return id
}

// Token returns the caller's session token stored by RequireSession.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalToken).(string)
	return token
}
