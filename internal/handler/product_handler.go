package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/handler/middleware"
	"github.com/RostislavK636/B2B-marketplace/internal/service"
	"github.com/RostislavK636/B2B-marketplace/pkg/validator"
)

type ProductHandler struct {
	productService *service.ProductService
	validator      *validator.Validator
}

func NewProductHandler(productService *service.ProductService, validator *validator.Validator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator,
	}
}

// Save creates a listing for the authenticated seller.
// POST /api/v1/products
func (h *ProductHandler) Save(c *fiber.Ctx) error {
	var req service.SaveProductRequest
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

	if _, err := h.productService.Save(c.Context(), middleware.SellerID(c), req); err != nil {
		log.Printf("Product save error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "product added",
	})
}

// List returns the authenticated seller's products.
// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.ListBySeller(c.Context(), middleware.SellerID(c))
	if err != nil {
		log.Printf("Product list error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// Get returns one of the authenticated seller's products.
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid product id",
		})
	}

	product, err := h.productService.Get(c.Context(), middleware.SellerID(c), int64(productID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "product not found",
			})
		}
		log.Printf("Product lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

// Delete removes one of the authenticated seller's products.
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid product id",
		})
	}

	if err := h.productService.Delete(c.Context(), middleware.SellerID(c), int64(productID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "product not found",
			})
		}
		log.Printf("Product delete error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "product deleted",
	})
}

// DeleteAll removes every product of the authenticated seller.
// DELETE /api/v1/products
func (h *ProductHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.productService.DeleteAll(c.Context(), middleware.SellerID(c)); err != nil {
		log.Printf("Product delete-all error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "products deleted",
	})
}
