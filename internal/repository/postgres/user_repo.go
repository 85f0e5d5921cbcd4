package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	authuc "github.com/dsentered/lasatastore/internal/usecase/auth"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ authuc.Store = (*UserRepo)(nil)

func (r *UserRepo) CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (*authuc.User, error) {
	const q = `
INSERT INTO users (email, password_hash, first_name, last_name)
VALUES ($1, $2, $3, $4)
RETURNING id::text, email, first_name, last_name, role, is_active, password_hash;
`
	row := r.db.QueryRow(ctx, q, email, passwordHash, firstName, lastName)

	var out authuc.User
	if err := row.Scan(&out.ID, &out.Email, &out.FirstName, &out.LastName, &out.Role, &out.IsActive, &out.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return nil, authuc.ErrEmailExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*authuc.User, error) {
	const q = `
SELECT id::text, email, first_name, last_name, role, is_active, password_hash
FROM users
WHERE email = $1;
`
	row := r.db.QueryRow(ctx, q, email)

	var out authuc.User
	if err := row.Scan(&out.ID, &out.Email, &out.FirstName, &out.LastName, &out.Role, &out.IsActive, &out.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
