// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	productdom "storefront/internal/domain/product"
)

// ProductRepositoryPG implements product.Repository on PostgreSQL.
//
// Table:
//
//	CREATE TABLE products (
//	  id          TEXT PRIMARY KEY,
//	  name        TEXT NOT NULL,
//	  description TEXT NOT NULL DEFAULT '',
//	  price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
//	  image       TEXT NOT NULL DEFAULT '',
//	  category    TEXT NOT NULL,
//	  stock       INTEGER NOT NULL CHECK (stock >= 0),
//	  created_at  TIMESTAMPTZ NOT NULL,
//	  updated_at  TIMESTAMPTZ NOT NULL
//	);
type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(db *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: db}
}

var productColumns = []string{
	"id", "name", "description", "price", "image", "category", "stock",
	"created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *ProductRepositoryPG) List(ctx context.Context) ([]productdom.Product, error) {
	rows, err := psql.
		Select(productColumns...).
		From("products").
		OrderBy("created_at ASC", "id ASC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	out := make([]productdom.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	row := psql.
		Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": strings.TrimSpace(id)}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	_, err := psql.
		Insert("products").
		SetMap(map[string]interface{}{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image":       p.Image,
			"category":    string(p.Category),
			"stock":       p.Stock,
			"created_at":  p.CreatedAt,
			"updated_at":  p.UpdatedAt,
		}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return productdom.Product{}, fmt.Errorf("inserting product: %w", err)
	}
	return p, nil
}

func (r *ProductRepositoryPG) Save(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	res, err := psql.
		Update("products").
		Where(squirrel.Eq{"id": p.ID}).
		SetMap(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image":       p.Image,
			"category":    string(p.Category),
			"stock":       p.Stock,
			"updated_at":  p.UpdatedAt,
		}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return productdom.Product{}, fmt.Errorf("updating product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return productdom.Product{}, fmt.Errorf("getting affected rows: %w", err)
	}
	if n == 0 {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepositoryPG) Delete(ctx context.Context, id string) error {
	res, err := psql.
		Delete("products").
		Where(squirrel.Eq{"id": strings.TrimSpace(id)}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if n == 0 {
		return productdom.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(rs rowScanner) (productdom.Product, error) {
	var (
		p        productdom.Product
		category string
	)
	if err := rs.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &category, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return productdom.Product{}, err
	}
	p.Category = productdom.Category(category)
	return p, nil
}
