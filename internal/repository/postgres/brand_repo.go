package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	branduc "github.com/dsentered/lasatastore/internal/usecase/brand"
)

type BrandRepo struct {
	db *pgxpool.Pool
}

func NewBrandRepo(db *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{db: db}
}

var _ branduc.Store = (*BrandRepo)(nil)

func (r *BrandRepo) Create(ctx context.Context, name, slug string) (*branduc.Brand, error) {
	const q = `
INSERT INTO brands (name, slug)
VALUES ($1, $2)
RETURNING id::text, name, slug, created_at, updated_at;
`
	out, err := scanBrand(r.db.QueryRow(ctx, q, name, slug))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, branduc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *BrandRepo) List(ctx context.Context) ([]branduc.Brand, error) {
	const q = `
SELECT id::text, name, slug, created_at, updated_at
FROM brands
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []branduc.Brand
	for rows.Next() {
		var b branduc.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BrandRepo) Update(ctx context.Context, id string, name, slug *string) (*branduc.Brand, error) {
	const q = `
UPDATE brands
SET name = COALESCE($2, name),
    slug = COALESCE($3, slug),
    updated_at = now()
WHERE id = $1::uuid
RETURNING id::text, name, slug, created_at, updated_at;
`
	out, err := scanBrand(r.db.QueryRow(ctx, q, id, name, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branduc.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, branduc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *BrandRepo) Delete(ctx context.Context, id string) (*branduc.Brand, error) {
	const q = `
DELETE FROM brands
WHERE id = $1::uuid
RETURNING id::text, name, slug, created_at, updated_at;
`
	out, err := scanBrand(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branduc.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func scanBrand(row pgx.Row) (*branduc.Brand, error) {
	var b branduc.Brand
	if err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
