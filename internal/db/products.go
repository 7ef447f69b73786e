package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Product represents a row in the products table.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilters holds optional filters for listing products
type ProductFilters struct {
	Category string
	Limit    int
	Offset   int
}

// GetProduct retrieves a product by ID. Returns (nil, nil) when no row exists.
func (db *DB) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, COALESCE(brand, ''), COALESCE(category, ''), COALESCE(ingredients, '{}'), created_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.Ingredients, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// ListProducts retrieves products with optional filters.
func (db *DB) ListProducts(ctx context.Context, filters ProductFilters) ([]Product, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, name, COALESCE(brand, ''), COALESCE(category, ''), COALESCE(ingredients, '{}'), created_at
		FROM products WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.Ingredients, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// CountProducts returns the number of product rows.
func (db *DB) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
