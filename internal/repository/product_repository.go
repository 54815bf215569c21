package repository

import (
	"context"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
)

type ProductRepository interface {
	// Create inserts the product with its price ranges and details in one
	// transaction and fills in the assigned IDs.
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySeller(ctx context.Context, sellerID int64) error
}
