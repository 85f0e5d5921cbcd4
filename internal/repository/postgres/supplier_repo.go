package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	supplieruc "github.com/dsentered/lasatastore/internal/usecase/supplier"
)

const supplierColumns = `
  id::text, name, slug, supplier_type, contact_person, phone, email,
  location, country, website, tax_pin, registration_number,
  bank_account_number, bank_name, payment_terms, logo, notes,
  created_at, updated_at`

type SupplierRepo struct {
	db *pgxpool.Pool
}

func NewSupplierRepo(db *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{db: db}
}

var _ supplieruc.Store = (*SupplierRepo)(nil)

func (r *SupplierRepo) Create(ctx context.Context, in supplieruc.Input) (*supplieruc.Supplier, error) {
	const q = `
INSERT INTO suppliers (
  name, slug, supplier_type, contact_person, phone, email, location,
  country, website, tax_pin, registration_number, bank_account_number,
  bank_name, payment_terms, logo, notes
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING` + supplierColumns + `;`

	out, err := scanSupplier(r.db.QueryRow(ctx, q,
		in.Name, in.Slug, in.SupplierType, in.ContactPerson, in.Phone, in.Email,
		in.Location, in.Country, in.Website, in.TaxPin, in.RegistrationNumber,
		in.BankAccountNumber, in.BankName, in.PaymentTerms, in.Logo, in.Notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, supplieruc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]supplieruc.Supplier, error) {
	const q = `SELECT` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []supplieruc.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SupplierRepo) Update(ctx context.Context, id string, in supplieruc.Input) (*supplieruc.Supplier, error) {
	const q = `
UPDATE suppliers
SET name = $2,
    slug = $3,
    supplier_type = $4,
    contact_person = $5,
    phone = $6,
    email = $7,
    location = $8,
    country = $9,
    website = $10,
    tax_pin = $11,
    registration_number = $12,
    bank_account_number = $13,
    bank_name = $14,
    payment_terms = $15,
    logo = $16,
    notes = $17,
    updated_at = now()
WHERE id = $1::uuid
RETURNING` + supplierColumns + `;`

	out, err := scanSupplier(r.db.QueryRow(ctx, q, id,
		in.Name, in.Slug, in.SupplierType, in.ContactPerson, in.Phone, in.Email,
		in.Location, in.Country, in.Website, in.TaxPin, in.RegistrationNumber,
		in.BankAccountNumber, in.BankName, in.PaymentTerms, in.Logo, in.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplieruc.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, supplieruc.ErrSlugExists
		}
		return nil, err
	}
	return out, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) (*supplieruc.Supplier, error) {
	const q = `DELETE FROM suppliers WHERE id = $1::uuid RETURNING` + supplierColumns + `;`

	out, err := scanSupplier(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplieruc.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func scanSupplier(row pgx.Row) (*supplieruc.Supplier, error) {
	var s supplieruc.Supplier
	if err := row.Scan(
		&s.ID, &s.Name, &s.Slug, &s.SupplierType, &s.ContactPerson, &s.Phone,
		&s.Email, &s.Location, &s.Country, &s.Website, &s.TaxPin,
		&s.RegistrationNumber, &s.BankAccountNumber, &s.BankName,
		&s.PaymentTerms, &s.Logo, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
