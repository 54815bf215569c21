package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
}

type SaveProductRequest struct {
	Name                string                 `json:"name" validate:"required"`
	Availability        int64                  `json:"availability" validate:"gte=0"`
	Description         string                 `json:"description"`
	DetailedDescription string                 `json:"detailedDescription"`
	PriceRanges         []domain.PriceRange    `json:"productPriceRanges"`
	Details             *domain.ProductDetails `json:"productDetails"`
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Save creates a listing for sellerID. The seller association and the rating
// counters come from the server, never from the request.
func (s *ProductService) Save(ctx context.Context, sellerID int64, req SaveProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		SellerID:            sellerID,
		Name:                req.Name,
		AverageRating:       0,
		NumberOfReviews:     0,
		Availability:        req.Availability,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		PriceRanges:         req.PriceRanges,
		Details:             req.Details,
		CreatedAt:           time.Now(),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return product, nil
}

func (s *ProductService) ListBySeller(ctx context.Context, sellerID int64) ([]*domain.Product, error) {
	return s.products.ListBySeller(ctx, sellerID)
}

// Get returns a product only if it belongs to sellerID; another seller's
// product is reported as missing, not forbidden.
func (s *ProductService) Get(ctx context.Context, sellerID, productID int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, sellerID, productID int64) error {
	if _, err := s.Get(ctx, sellerID, productID); err != nil {
		return err
	}
	return s.products.Delete(ctx, productID)
}

func (s *ProductService) DeleteAll(ctx context.Context, sellerID int64) error {
	return s.products.DeleteBySeller(ctx, sellerID)
}
