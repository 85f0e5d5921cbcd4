package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	productuc "github.com/dsentered/lasatastore/internal/usecase/product"
)

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

var _ productuc.Store = (*ProductRepo)(nil)

const productColumns = `
  p.id::text, p.slug, p.name, p.description, p.batch_number, p.bar_code,
  p.image, p.alert_qty, p.stock_qty, p.sku, p.product_code, p.unit_type,
  p.brand_id::text, p.category_id::text, p.created_at, p.updated_at`

func (r *ProductRepo) Create(ctx context.Context, in productuc.Input) (*productuc.Product, error) {
	const q = `
INSERT INTO products AS p (
  slug, name, description, batch_number, bar_code, image, alert_qty,
  stock_qty, sku, product_code, unit_type, brand_id, category_id
)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 0), COALESCE($8, 0), $9, $10, $11, $12::uuid, $13::uuid)
RETURNING` + productColumns + `;`

	out, err := scanProduct(r.db.QueryRow(ctx, q,
		in.Slug, in.Name, in.Description, in.BatchNumber, in.BarCode, in.Image,
		in.AlertQty, in.StockQty, in.SKU, in.ProductCode, in.UnitType,
		in.BrandID, in.CategoryID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, productuc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]productuc.Product, error) {
	const q = `
SELECT` + productColumns + `,
  b.name, c.name
FROM products p
JOIN brands b ON b.id = p.brand_id
JOIN categories c ON c.id = p.category_id
ORDER BY p.created_at DESC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []productuc.Product
	for rows.Next() {
		var p productuc.Product
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Name, &p.Description, &p.BatchNumber, &p.BarCode,
			&p.Image, &p.AlertQty, &p.StockQty, &p.SKU, &p.ProductCode,
			&p.UnitType, &p.BrandID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
			&p.BrandName, &p.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, id string, in productuc.Input) (*productuc.Product, error) {
	const q = `
UPDATE products AS p
SET slug = $2,
    name = $3,
    description = $4,
    batch_number = $5,
    bar_code = $6,
    image = $7,
    alert_qty = COALESCE($8, alert_qty),
    stock_qty = COALESCE($9, stock_qty),
    sku = $10,
    product_code = $11,
    unit_type = $12,
    brand_id = COALESCE($13::uuid, brand_id),
    category_id = COALESCE($14::uuid, category_id),
    updated_at = now()
WHERE id = $1::uuid
RETURNING` + productColumns + `;`

	var brandID, categoryID *string
	if in.BrandID != "" {
		brandID = &in.BrandID
	}
	if in.CategoryID != "" {
		categoryID = &in.CategoryID
	}

	out, err := scanProduct(r.db.QueryRow(ctx, q, id,
		in.Slug, in.Name, in.Description, in.BatchNumber, in.BarCode, in.Image,
		in.AlertQty, in.StockQty, in.SKU, in.ProductCode, in.UnitType,
		brandID, categoryID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productuc.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, productuc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (*productuc.Product, error) {
	const q = `DELETE FROM products AS p WHERE id = $1::uuid RETURNING` + productColumns + `;`

	out, err := scanProduct(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productuc.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *ProductRepo) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM products WHERE id = $1::uuid;`
	var one int
	if err := r.db.QueryRow(ctx, q, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProductRepo) ListMovements(ctx context.Context, productID string) ([]productuc.Movement, error) {
	const q = `
SELECT id::text, delta, reason, purchase_order_id::text, created_at
FROM stock_movements
WHERE product_id = $1::uuid
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []productuc.Movement
	for rows.Next() {
		var m productuc.Movement
		if err := rows.Scan(&m.ID, &m.Delta, &m.Reason, &m.OrderID, &m.At); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*productuc.Product, error) {
	var p productuc.Product
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.BatchNumber, &p.BarCode,
		&p.Image, &p.AlertQty, &p.StockQty, &p.SKU, &p.ProductCode,
		&p.UnitType, &p.BrandID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
