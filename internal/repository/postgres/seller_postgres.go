package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/repository"
)

const pgUniqueViolation = "23505"

type sellerRepository struct {
	db *sqlx.DB
}

// NewSellerRepository creates a new PostgreSQL seller repository
func NewSellerRepository(db *sqlx.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// Create inserts a new seller and assigns its ID
func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	query := `
		INSERT INTO sellers (
			name, surname, email, phone_number, password_hash,
			company, taxpayer_id, created_at
		) VALUES (
			:name, :surname, :email, :phone_number, :password_hash,
			:company, :taxpayer_id, :created_at
		)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, seller)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create seller: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&seller.ID); err != nil {
			return fmt.Errorf("failed to scan seller id: %w", err)
		}
	}

	return rows.Err()
}

// GetByID retrieves a seller by its ID
func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*domain.Seller, error) {
	query := `
		SELECT id, name, surname, email, phone_number, password_hash,
			   company, taxpayer_id, created_at
		FROM sellers
		WHERE id = $1`

	var seller domain.Seller
	err := r.db.GetContext(ctx, &seller, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get seller by id: %w", err)
	}

	return &seller, nil
}

// GetByEmail retrieves a seller by its login email
func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	query := `
		SELECT id, name, surname, email, phone_number, password_hash,
			   company, taxpayer_id, created_at
		FROM sellers
		WHERE email = $1`

	var seller domain.Seller
	err := r.db.GetContext(ctx, &seller, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get seller by email: %w", err)
	}

	return &seller, nil
}

// List retrieves all sellers
func (r *sellerRepository) List(ctx context.Context) ([]*domain.Seller, error) {
	query := `
		SELECT id, name, surname, email, phone_number, password_hash,
			   company, taxpayer_id, created_at
		FROM sellers
		ORDER BY id`

	var sellers []*domain.Seller
	if err := r.db.SelectContext(ctx, &sellers, query); err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	return sellers, nil
}

// Delete removes a seller; products cascade at the schema level
func (r *sellerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sellers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
