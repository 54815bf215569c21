package repository

import (
	"context"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
)

type SellerRepository interface {
	// Create inserts the seller and fills in its assigned ID.
	Create(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id int64) (*domain.Seller, error)
	GetByEmail(ctx context.Context, email string) (*domain.Seller, error)
	List(ctx context.Context) ([]*domain.Seller, error)
	Delete(ctx context.Context, id int64) error
}
