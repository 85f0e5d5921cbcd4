package supplier

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSlugExists   = errors.New("supplier with this slug already exists")
	ErrNotFound     = errors.New("supplier not found")
)

// Supplier types mirror the catalog's procurement sources.
const (
	TypeManufacturer = "MANUFACTURER"
	TypeDistributor  = "DISTRIBUTOR"
	TypeWholesale    = "WHOLESALE"
	TypeRetailer     = "RETAILER"
	TypeOther        = "OTHER"
)

type Supplier struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	SupplierType       *string   `json:"supplierType"`
	ContactPerson      *string   `json:"contactPerson"`
	Phone              *string   `json:"phone"`
	Email              *string   `json:"email"`
	Location           *string   `json:"location"`
	Country            *string   `json:"country"`
	Website            *string   `json:"website"`
	TaxPin             *string   `json:"taxPin"`
	RegistrationNumber *string   `json:"registrationNumber"`
	BankAccountNumber  *string   `json:"bankAccountNumber"`
	BankName           *string   `json:"bankName"`
	PaymentTerms       *string   `json:"paymentTerms"`
	Logo               *string   `json:"logo"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type Input struct {
	Name               string  `json:"name"`
	Slug               string  `json:"slug"`
	SupplierType       *string `json:"supplierType"`
	ContactPerson      *string `json:"contactPerson"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	Location           *string `json:"location"`
	Country            *string `json:"country"`
	Website            *string `json:"website"`
	TaxPin             *string `json:"taxPin"`
	RegistrationNumber *string `json:"registrationNumber"`
	BankAccountNumber  *string `json:"bankAccountNumber"`
	BankName           *string `json:"bankName"`
	PaymentTerms       *string `json:"paymentTerms"`
	Logo               *string `json:"logo"`
	Notes              *string `json:"notes"`
}

type Store interface {
	Create(ctx context.Context, in Input) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Update(ctx context.Context, id string, in Input) (*Supplier, error)
	Delete(ctx context.Context, id string) (*Supplier, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func validSupplierType(t *string) bool {
	if t == nil || *t == "" {
		return true
	}
	switch *t {
	case TypeManufacturer, TypeDistributor, TypeWholesale, TypeRetailer, TypeOther:
		return true
	}
	return false
}

func (u *Usecase) Create(ctx context.Context, in Input) (*Supplier, error) {
	if in.Name == "" || in.Slug == "" || !validSupplierType(in.SupplierType) {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, in)
}

func (u *Usecase) List(ctx context.Context) ([]Supplier, error) {
	return u.store.List(ctx)
}

func (u *Usecase) Update(ctx context.Context, id string, in Input) (*Supplier, error) {
	if id == "" || in.Name == "" || in.Slug == "" || !validSupplierType(in.SupplierType) {
		return nil, ErrInvalidInput
	}
	return u.store.Update(ctx, id, in)
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Supplier, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}
