package service

import (
	"context"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/repository"
)

type SellerService struct {
	sellers repository.SellerRepository
}

func NewSellerService(sellers repository.SellerRepository) *SellerService {
	return &SellerService{sellers: sellers}
}

func (s *SellerService) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	return s.sellers.GetByID(ctx, id)
}

func (s *SellerService) List(ctx context.Context) ([]*domain.Seller, error) {
	return s.sellers.List(ctx)
}

// Delete removes the seller; owned products cascade with it.
func (s *SellerService) Delete(ctx context.Context, id int64) error {
	return s.sellers.Delete(ctx, id)
}
