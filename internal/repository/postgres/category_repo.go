package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	categoryuc "github.com/dsentered/lasatastore/internal/usecase/category"
)

type CategoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{db: db}
}

var _ categoryuc.Store = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(ctx context.Context, name, slug string, parentID *string) (*categoryuc.Category, error) {
	const q = `
INSERT INTO categories (name, slug, parent_id)
VALUES ($1, $2, $3::uuid)
RETURNING id::text, name, slug, parent_id::text, created_at, updated_at;
`
	out, err := scanCategory(r.db.QueryRow(ctx, q, name, slug, parentID))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, categoryuc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]categoryuc.Category, error) {
	const q = `
SELECT id::text, name, slug, parent_id::text, created_at, updated_at
FROM categories
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []categoryuc.Category
	for rows.Next() {
		var c categoryuc.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, id string, name, slug, parentID *string) (*categoryuc.Category, error) {
	const q = `
UPDATE categories
SET name = COALESCE($2, name),
    slug = COALESCE($3, slug),
    parent_id = COALESCE($4::uuid, parent_id),
    updated_at = now()
WHERE id = $1::uuid
RETURNING id::text, name, slug, parent_id::text, created_at, updated_at;
`
	out, err := scanCategory(r.db.QueryRow(ctx, q, id, name, slug, parentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categoryuc.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, categoryuc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) (*categoryuc.Category, error) {
	const q = `
DELETE FROM categories
WHERE id = $1::uuid
RETURNING id::text, name, slug, parent_id::text, created_at, updated_at;
`
	out, err := scanCategory(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categoryuc.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func scanCategory(row pgx.Row) (*categoryuc.Category, error) {
	var c categoryuc.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
