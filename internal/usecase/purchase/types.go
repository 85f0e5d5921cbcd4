package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order statuses. The ledger treats status as opaque payload:
// it is stored as given and never transitioned server-side.
const (
	StatusPaid    = "PAID"
	StatusPartial = "PARTIAL"
	StatusUnpaid  = "UNPAID"
)

type Order struct {
	ID            string           `json:"id"`
	SupplierID    string           `json:"supplierId"`
	Supplier      *Supplier        `json:"supplier,omitempty"`
	Status        string           `json:"status"`
	Discount      decimal.Decimal  `json:"discount"`
	Tax           decimal.Decimal  `json:"tax"`
	ShippingCost  *decimal.Decimal `json:"shippingCost"`
	RefNo         string           `json:"refNo"`
	Notes         string           `json:"notes"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	BalanceAmount decimal.Decimal  `json:"balanceAmount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	Items         []Item           `json:"items"`
}

type Item struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"purchaseOrderId"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	SubTotal     decimal.Decimal `json:"subTotal"`
	CurrentStock int             `json:"currentStock"`
	Product      *ProductRef     `json:"product,omitempty"`
}

// Supplier and ProductRef are the join projections carried on reads.
type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	StockQty int    `json:"stockQty"`
}

// Movement is one append-only stock ledger entry. stock_qty on the product
// is the materialized sum of all movements for that product.
type Movement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	OrderID   *string   `json:"purchaseOrderId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	ReasonCreate        = "purchase_create"
	ReasonUpdateReverse = "purchase_update_reverse"
	ReasonUpdateApply   = "purchase_update_apply"
	ReasonDelete        = "purchase_delete"
)

type OrderInput struct {
	ID            *string          `json:"id"`
	SupplierID    string           `json:"supplierId"`
	Status        string           `json:"status"`
	Discount      *decimal.Decimal `json:"discount"`
	Tax           *decimal.Decimal `json:"tax"`
	ShippingCost  *decimal.Decimal `json:"shippingCost"`
	RefNo         *string          `json:"refNo"`
	Notes         *string          `json:"notes"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	BalanceAmount *decimal.Decimal `json:"balanceAmount"`
	Items         []ItemInput      `json:"items"`
}

type ItemInput struct {
	ProductID    string           `json:"productId"`
	ProductName  string           `json:"productName"`
	Quantity     int              `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	SubTotal     *decimal.Decimal `json:"subTotal"`
	CurrentStock *int             `json:"currentStock"`
}

// normalize fills the defaults the storage layer expects: absent numeric
// fields become 0, absent text fields become empty strings.
func (in *OrderInput) normalize() {
	zero := decimal.Zero
	if in.Discount == nil {
		in.Discount = &zero
	}
	if in.Tax == nil {
		in.Tax = &zero
	}
	if in.TotalAmount == nil {
		in.TotalAmount = &zero
	}
	if in.BalanceAmount == nil {
		in.BalanceAmount = &zero
	}
	empty := ""
	if in.RefNo == nil {
		in.RefNo = &empty
	}
	if in.Notes == nil {
		in.Notes = &empty
	}
	for i := range in.Items {
		it := &in.Items[i]
		if it.UnitCost == nil {
			it.UnitCost = &zero
		}
		if it.SubTotal == nil {
			it.SubTotal = &zero
		}
		if it.CurrentStock == nil {
			zeroStock := 0
			it.CurrentStock = &zeroStock
		}
	}
}
