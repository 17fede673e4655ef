// File: internal/repository/product.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront/internal/database"
	"storefront/internal/model"
)

func CountProducts(ctx context.Context, db database.DB) (int, error) {
	row := db.QueryRow(ctx, `SELECT count(*) FROM products`)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountProducts: %w", err)
	}
	return total, nil
}

// ListProducts returns the window [offset, offset+limit) ordered by id.
func ListProducts(ctx context.Context, db database.DB, offset, limit int) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, price, created_at
		 FROM products ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return scanProducts(rows, "ListProducts")
}

// ListAllProducts returns the whole catalog ordered by id.
func ListAllProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, price, created_at
		 FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAllProducts: %w", err)
	}
	return scanProducts(rows, "ListAllProducts")
}

func scanProducts(rows pgx.Rows, op string) ([]model.Product, error) {
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}
