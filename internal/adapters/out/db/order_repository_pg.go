// internal/adapters/out/db/order_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	orderdom "storefront/internal/domain/order"
)

// OrderRepositoryPG implements order.Repository on PostgreSQL.
//
// Table:
//
//	CREATE TABLE orders (
//	  id          TEXT PRIMARY KEY,
//	  user_id     TEXT NOT NULL,
//	  items       JSONB NOT NULL,
//	  total       DOUBLE PRECISION NOT NULL,
//	  status      TEXT NOT NULL,
//	  ship_street TEXT NOT NULL,
//	  ship_city   TEXT NOT NULL,
//	  ship_state  TEXT NOT NULL,
//	  ship_zip    TEXT NOT NULL,
//	  ship_country TEXT NOT NULL,
//	  created_at  TIMESTAMPTZ NOT NULL,
//	  updated_at  TIMESTAMPTZ NOT NULL
//	);
//
// Item snapshots live in a JSONB column: they are written once at checkout and
// only ever read back whole, so relational modelling buys nothing here.
type OrderRepositoryPG struct {
	DB *sql.DB
}

func NewOrderRepositoryPG(db *sql.DB) *OrderRepositoryPG {
	return &OrderRepositoryPG{DB: db}
}

var orderColumns = []string{
	"id", "user_id", "items", "total", "status",
	"ship_street", "ship_city", "ship_state", "ship_zip", "ship_country",
	"created_at", "updated_at",
}

func (r *OrderRepositoryPG) GetByID(ctx context.Context, id string) (orderdom.Order, error) {
	row := psql.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": strings.TrimSpace(id)}).
		RunWith(r.DB).
		QueryRowContext(ctx)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Order{}, orderdom.ErrNotFound
		}
		return orderdom.Order{}, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	rows, err := psql.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"user_id": strings.TrimSpace(userID)}).
		OrderBy("created_at DESC", "id DESC").
		RunWith(r.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	out := make([]orderdom.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepositoryPG) Create(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("encoding order items: %w", err)
	}

	_, err = psql.
		Insert("orders").
		SetMap(map[string]interface{}{
			"id":           o.ID,
			"user_id":      o.UserID,
			"items":        items,
			"total":        o.Total,
			"status":       string(o.Status),
			"ship_street":  o.ShippingAddress.Street,
			"ship_city":    o.ShippingAddress.City,
			"ship_state":   o.ShippingAddress.State,
			"ship_zip":     o.ShippingAddress.ZipCode,
			"ship_country": o.ShippingAddress.Country,
			"created_at":   o.CreatedAt,
			"updated_at":   o.UpdatedAt,
		}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("inserting order: %w", err)
	}
	return o, nil
}

func (r *OrderRepositoryPG) Save(ctx context.Context, o orderdom.Order) (orderdom.Order, error) {
	res, err := psql.
		Update("orders").
		Where(squirrel.Eq{"id": o.ID}).
		SetMap(map[string]interface{}{
			"status":     string(o.Status),
			"updated_at": o.UpdatedAt,
		}).
		RunWith(r.DB).
		ExecContext(ctx)
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("updating order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("getting affected rows: %w", err)
	}
	if n == 0 {
		return orderdom.Order{}, orderdom.ErrNotFound
	}
	return o, nil
}

func scanOrder(rs rowScanner) (orderdom.Order, error) {
	var (
		o      orderdom.Order
		items  []byte
		status string
	)
	if err := rs.Scan(
		&o.ID, &o.UserID, &items, &o.Total, &status,
		&o.ShippingAddress.Street, &o.ShippingAddress.City, &o.ShippingAddress.State,
		&o.ShippingAddress.ZipCode, &o.ShippingAddress.Country,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return orderdom.Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return orderdom.Order{}, fmt.Errorf("decoding order items: %w", err)
	}
	o.Status = orderdom.Status(status)
	return o, nil
}
