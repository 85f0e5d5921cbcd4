package product

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSlugExists   = errors.New("product with this slug already exists")
	ErrNotFound     = errors.New("product not found")
)

// Unit types for product quantities.
const (
	UnitPiece = "piece"
	UnitKg    = "kg"
	UnitG     = "g"
	UnitMl    = "ml"
	UnitL     = "l"
	UnitOther = "other"
)

type Product struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	BatchNumber  *string   `json:"batchNumber"`
	BarCode      *string   `json:"barCode"`
	Image        *string   `json:"image"`
	AlertQty     int       `json:"alertQty"`
	StockQty     int       `json:"stockQty"`
	SKU          *string   `json:"sku"`
	ProductCode  *string   `json:"productCode"`
	UnitType     *string   `json:"unitType"`
	BrandID      string    `json:"brandId"`
	CategoryID   string    `json:"categoryId"`
	BrandName    *string   `json:"brandName,omitempty"`
	CategoryName *string   `json:"categoryName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Movement is a read projection of the stock ledger for one product.
type Movement struct {
	ID      string    `json:"id"`
	Delta   int       `json:"delta"`
	Reason  string    `json:"reason"`
	OrderID *string   `json:"purchaseOrderId"`
	At      time.Time `json:"createdAt"`
}

type Input struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BatchNumber *string `json:"batchNumber"`
	BarCode     *string `json:"barCode"`
	Image       *string `json:"image"`
	AlertQty    *int    `json:"alertQty"`
	StockQty    *int    `json:"stockQty"`
	SKU         *string `json:"sku"`
	ProductCode *string `json:"productCode"`
	UnitType    *string `json:"unitType"`
	BrandID     string  `json:"brandId"`
	CategoryID  string  `json:"categoryId"`
}

type Store interface {
	Create(ctx context.Context, in Input) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id string, in Input) (*Product, error)
	Delete(ctx context.Context, id string) (*Product, error)
	ListMovements(ctx context.Context, productID string) ([]Movement, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func validUnitType(t *string) bool {
	if t == nil || *t == "" {
		return true
	}
	switch *t {
	case UnitPiece, UnitKg, UnitG, UnitMl, UnitL, UnitOther:
		return true
	}
	return false
}

func (u *Usecase) Create(ctx context.Context, in Input) (*Product, error) {
	if in.Name == "" || in.Slug == "" || in.BrandID == "" || in.CategoryID == "" || !validUnitType(in.UnitType) {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, in)
}

func (u *Usecase) List(ctx context.Context) ([]Product, error) {
	return u.store.List(ctx)
}

func (u *Usecase) Update(ctx context.Context, id string, in Input) (*Product, error) {
	if id == "" || in.Name == "" || in.Slug == "" || !validUnitType(in.UnitType) {
		return nil, ErrInvalidInput
	}
	return u.store.Update(ctx, id, in)
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}

// ListMovements returns the stock ledger entries for a product, newest
// first. The sum of deltas equals the product's current stockQty.
func (u *Usecase) ListMovements(ctx context.Context, productID string) ([]Movement, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}
	ok, err := u.store.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return u.store.ListMovements(ctx, productID)
}
