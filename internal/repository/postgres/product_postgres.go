package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/RostislavK636/B2B-marketplace/internal/domain"
	"github.com/RostislavK636/B2B-marketplace/internal/repository"
)

type productRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a product with its price ranges and details in one transaction
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	productQuery := `
		INSERT INTO products (
			seller_id, name, average_rating, number_of_reviews, availability,
			description, detailed_description, created_at
		) VALUES (
			:seller_id, :name, :average_rating, :number_of_reviews, :availability,
			:description, :detailed_description, :created_at
		)
		RETURNING id`

	rows, err := tx.NamedQuery(productQuery, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if rows.Next() {
		if err := rows.Scan(&product.ID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan product id: %w", err)
		}
	}
	rows.Close()

	rangeQuery := `
		INSERT INTO product_price_ranges (
			product_id, initial_quantity, final_quantity, price_per_range
		) VALUES (
			:product_id, :initial_quantity, :final_quantity, :price_per_range
		)
		RETURNING id`

	for i := range product.PriceRanges {
		product.PriceRanges[i].ProductID = product.ID

		rows, err := tx.NamedQuery(rangeQuery, &product.PriceRanges[i])
		if err != nil {
			return fmt.Errorf("failed to create price range: %w", err)
		}
		if rows.Next() {
			if err := rows.Scan(&product.PriceRanges[i].ID); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan price range id: %w", err)
			}
		}
		rows.Close()
	}

	if product.Details != nil {
		product.Details.ProductID = product.ID

		detailsQuery := `
			INSERT INTO product_details (
				product_id, size, weight, minimum_order_starts_from,
				material, color, load_capacity
			) VALUES (
				:product_id, :size, :weight, :minimum_order_starts_from,
				:material, :color, :load_capacity
			)
			RETURNING id`

		rows, err := tx.NamedQuery(detailsQuery, product.Details)
		if err != nil {
			return fmt.Errorf("failed to create product details: %w", err)
		}
		if rows.Next() {
			if err := rows.Scan(&product.Details.ID); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan product details id: %w", err)
			}
		}
		rows.Close()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product creation: %w", err)
	}

	return nil
}

// GetByID retrieves a product with its price ranges and details
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, seller_id, name, average_rating, number_of_reviews,
			   availability, description, detailed_description, created_at
		FROM products
		WHERE id = $1`

	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	if err := r.loadChildren(ctx, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// ListBySeller retrieves all products belonging to one seller
func (r *productRepository) ListBySeller(ctx context.Context, sellerID int64) ([]*domain.Product, error) {
	query := `
		SELECT id, seller_id, name, average_rating, number_of_reviews,
			   availability, description, detailed_description, created_at
		FROM products
		WHERE seller_id = $1
		ORDER BY id`

	var products []*domain.Product
	if err := r.db.SelectContext(ctx, &products, query, sellerID); err != nil {
		return nil, fmt.Errorf("failed to list products by seller: %w", err)
	}

	for _, product := range products {
		if err := r.loadChildren(ctx, product); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// Delete removes a product; price ranges and details cascade at the schema level
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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

// DeleteBySeller removes all products belonging to one seller
func (r *productRepository) DeleteBySeller(ctx context.Context, sellerID int64) error {
	query := `DELETE FROM products WHERE seller_id = $1`

	if _, err := r.db.ExecContext(ctx, query, sellerID); err != nil {
		return fmt.Errorf("failed to delete products by seller: %w", err)
	}

	return nil
}

func (r *productRepository) loadChildren(ctx context.Context, product *domain.Product) error {
	rangesQuery := `
		SELECT id, product_id, initial_quantity, final_quantity, price_per_range
		FROM product_price_ranges
		WHERE product_id = $1
		ORDER BY initial_quantity`

	if err := r.db.SelectContext(ctx, &product.PriceRanges, rangesQuery, product.ID); err != nil {
		return fmt.Errorf("failed to load price ranges: %w", err)
	}

	detailsQuery := `
		SELECT id, product_id, size, weight, minimum_order_starts_from,
			   material, color, load_capacity
		FROM product_details
		WHERE product_id = $1`

	var details domain.ProductDetails
	err := r.db.GetContext(ctx, &details, detailsQuery, product.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			product.Details = nil
			return nil
		}
		return fmt.Errorf("failed to load product details: %w", err)
	}
	product.Details = &details

	return nil
}
