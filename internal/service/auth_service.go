package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/repository"
	"github.com/RostislavK636/B2B-marketplace/internal/session"
	"github.com/RostislavK636/B2B-marketplace/pkg/hash"
)

// AuthService owns the authentication boundary: credential verification,
// session lifecycle, and caller identity resolution.
type AuthService struct {
	sellers repository.SellerRepository
	store   session.Store
	hasher  *hash.Hasher
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Company     string `json:"company" validate:"required"`
	TaxpayerID  string `json:"taxpayerId" validate:"required"`
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	SellerID    int64
	SellerEmail string
}

func NewAuthService(
	sellers repository.SellerRepository,
	store session.Store,
	hasher *hash.Hasher,
) *AuthService {
	return &AuthService{
		sellers: sellers,
		store:   store,
		hasher:  hasher,
	}
}

// Login verifies the submitted credentials and establishes a session.
// A missing seller and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*Identity, string, error) {
	seller, err := s.sellers.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up seller: %w", err)
	}

	valid, err := s.hasher.Verify(req.Password, seller.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.establishSession(ctx, seller)
	if err != nil {
		return nil, "", err
	}

	return &Identity{SellerID: seller.ID, SellerEmail: seller.Email}, token, nil
}

// Register creates a seller with a hashed password and establishes a session,
// so a freshly registered seller is immediately authenticated.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.Seller, string, error) {
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	seller := &domain.Seller{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		Company:      req.Company,
		TaxpayerID:   req.TaxpayerID,
		CreatedAt:    time.Now(),
	}

	if err := s.sellers.Create(ctx, seller); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create seller: %w", err)
	}

	token, err := s.establishSession(ctx, seller)
	if err != nil {
		return nil, "", err
	}

	return seller, token, nil
}

// Resolve answers "who is the caller" for a session token. A token whose
// seller row no longer exists is treated as unauthenticated and the stale
// session is destroyed.
func (s *AuthService) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	data, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	seller, err := s.sellers.GetByID(ctx, data.SellerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.store.Delete(ctx, token)
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve seller: %w", err)
	}

	return &Identity{SellerID: seller.ID, SellerEmail: seller.Email}, nil
}

// Logout destroys the session behind token. It never fails on an absent or
// already-invalidated session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *AuthService) establishSession(ctx context.Context, seller *domain.Seller) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", fmt.Errorf("failed to mint session token: %w", err)
	}

	data := session.Data{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		SellerEmail: seller.Email,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Create(ctx, token, data); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}
