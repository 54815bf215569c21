package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RostislavK636/B2B-marketplace/internal/config"
	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/service"
	"github.com/RostislavK636/B2B-marketplace/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validator
	session     config.SessionConfig
}

func NewAuthHandler(authService *service.AuthService, validator *validator.Validator, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		session:     session,
	}
}

// Auth reports whether the caller holds a live session. It is a probe, not a
// gate: the status is 200 regardless of session state.
// GET /api/v1/auth
func (h *AuthHandler) Auth(c *fiber.Ctx) error {
	token := c.Cookies(h.session.CookieName)

	identity, err := h.authService.Resolve(c.Context(), token)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthenticated) {
			log.Printf("Session resolution error: %v", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"authenticated": false,
			"message":       "not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"sellerId":      identity.SellerID,
		"sellerEmail":   identity.SellerEmail,
		"message":       "authenticated",
	})
}

// Logout destroys the caller's session if one exists. Always 200.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.session.CookieName)

	if err := h.authService.Logout(c.Context(), token); err != nil {
		// The session backend failing should not keep the client logged in
		log.Printf("Logout error: %v", err)
	}
	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "logout",
	})
}

// Login verifies credentials and sets the session cookie.
// POST /api/v1/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	identity, token, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid email or password",
			})
		}
		log.Printf("Login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "internal server error",
		})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"sellerId":    identity.SellerID,
		"sellerEmail": identity.SellerEmail,
		"message":     "logged in",
	})
}

// Register creates a seller and immediately establishes its session.
// POST /api/v1/registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	seller, token, err := h.authService.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "email already registered",
			})
		}
		log.Printf("Registration error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "internal server error",
		})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"sellerId": seller.ID,
		"message":  "seller has been registered",
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.session.TTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
