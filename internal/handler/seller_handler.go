package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/handler/middleware"
	"github.com/RostislavK636/B2B-marketplace/internal/service"
)

type SellerHandler struct {
	sellerService *service.SellerService
	authService   *service.AuthService
}

func NewSellerHandler(sellerService *service.SellerService, authService *service.AuthService) *SellerHandler {
	return &SellerHandler{
		sellerService: sellerService,
		authService:   authService,
	}
}

// Current returns the authenticated seller's record.
// GET /api/v1/sellers/current
func (h *SellerHandler) Current(c *fiber.Ctx) error {
	seller, err := h.sellerService.GetByID(c.Context(), middleware.SellerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "seller not found",
			})
		}
		log.Printf("Current seller lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(seller)
}

// List returns every registered seller.
// GET /api/v1/sellers
func (h *SellerHandler) List(c *fiber.Ctx) error {
	sellers, err := h.sellerService.List(c.Context())
	if err != nil {
		log.Printf("Seller list error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(sellers)
}

// Delete removes the authenticated seller along with its products and ends
// the session.
// DELETE /api/v1/sellers
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	if err := h.sellerService.Delete(c.Context(), middleware.SellerID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "seller not found",
			})
		}
		log.Printf("Seller delete error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	if err := h.authService.Logout(c.Context(), middleware.Token(c)); err != nil {
		log.Printf("Session cleanup error after seller delete: %v", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "seller deleted",
	})
}
