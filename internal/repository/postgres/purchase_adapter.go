package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
)

// PurchaseStore implements the purchase ledger Store on Postgres. Every
// InTx call runs inside a single pgx transaction: either all stock and
// order writes commit, or the rollback leaves both untouched.
type PurchaseStore struct {
	db *pgxpool.Pool
}

func NewPurchaseStore(db *pgxpool.Pool) *PurchaseStore {
	return &PurchaseStore{db: db}
}

var _ purchaseuc.Store = (*PurchaseStore)(nil)

func (s *PurchaseStore) InTx(ctx context.Context, fn func(ctx context.Context, tx purchaseuc.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &purchaseTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *PurchaseStore) List(ctx context.Context) ([]purchaseuc.Order, error) {
	rows, err := s.db.Query(ctx, orderSelect+`ORDER BY po.created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []purchaseuc.Order
	for rows.Next() {
		row, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		o, err := mapOrderRow(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := listItemRows(ctx, s.db, `ORDER BY i.created_at;`)
	if err != nil {
		return nil, err
	}
	byOrder := make(map[string][]purchaseuc.Item, len(orders))
	for _, it := range items {
		mapped, err := mapItemRow(it)
		if err != nil {
			return nil, err
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], mapped)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (s *PurchaseStore) Get(ctx context.Context, id string) (*purchaseuc.Order, error) {
	row, err := scanOrderRow(s.db.QueryRow(ctx, orderSelect+`WHERE po.id = $1::uuid;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := listItemRows(ctx, s.db, `WHERE i.purchase_order_id = $1::uuid ORDER BY i.created_at;`, id)
	if err != nil {
		return nil, err
	}
	return assembleOrder(row, items)
}

type purchaseTx struct {
	tx pgx.Tx
}

var _ purchaseuc.Tx = (*purchaseTx)(nil)

func (t *purchaseTx) OrderExists(ctx context.Context, id string) (bool, error) {
	return orderExists(ctx, t.tx, id)
}

func (t *purchaseTx) GetOrderForUpdate(ctx context.Context, id string) (*purchaseuc.Order, error) {
	row, items, err := getOrderForUpdate(ctx, t.tx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return assembleOrder(row, items)
}

func (t *purchaseTx) SupplierExists(ctx context.Context, id string) (bool, error) {
	return supplierExists(ctx, t.tx, id)
}

func (t *purchaseTx) ProductExists(ctx context.Context, id string) (bool, error) {
	return productExists(ctx, t.tx, id)
}

func (t *purchaseTx) InsertOrder(ctx context.Context, in purchaseuc.OrderInput) (*purchaseuc.Order, error) {
	row, err := insertOrder(ctx, t.tx, in)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, purchaseuc.ErrOrderExists
		}
		return nil, err
	}
	items, err := listItemRows(ctx, t.tx, `WHERE i.purchase_order_id = $1::uuid ORDER BY i.created_at;`, row.ID)
	if err != nil {
		return nil, err
	}
	return assembleOrder(row, items)
}

func (t *purchaseTx) ReplaceOrder(ctx context.Context, id string, in purchaseuc.OrderInput) (*purchaseuc.Order, error) {
	row, err := replaceOrder(ctx, t.tx, id, in)
	if err != nil {
		return nil, err
	}
	items, err := listItemRows(ctx, t.tx, `WHERE i.purchase_order_id = $1::uuid ORDER BY i.created_at;`, id)
	if err != nil {
		return nil, err
	}
	return assembleOrder(row, items)
}

func (t *purchaseTx) DeleteOrder(ctx context.Context, id string) error {
	return deleteOrder(ctx, t.tx, id)
}

func (t *purchaseTx) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	return adjustStock(ctx, t.tx, productID, delta)
}

func (t *purchaseTx) AppendMovement(ctx context.Context, m purchaseuc.Movement) error {
	return appendMovement(ctx, t.tx, m)
}

// --- row mapping ---------------------------------------------------------

func assembleOrder(row *OrderRow, items []OrderItemRow) (*purchaseuc.Order, error) {
	o, err := mapOrderRow(row)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		mapped, err := mapItemRow(it)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, mapped)
	}
	return o, nil
}

func mapOrderRow(r *OrderRow) (*purchaseuc.Order, error) {
	discount, err := decimal.NewFromString(r.Discount)
	if err != nil {
		return nil, err
	}
	tax, err := decimal.NewFromString(r.Tax)
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(r.TotalAmount)
	if err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(r.BalanceAmount)
	if err != nil {
		return nil, err
	}

	var shipping *decimal.Decimal
	if r.ShippingCost != nil {
		d, err := decimal.NewFromString(*r.ShippingCost)
		if err != nil {
			return nil, err
		}
		shipping = &d
	}

	out := &purchaseuc.Order{
		ID:            r.ID,
		SupplierID:    r.SupplierID,
		Status:        r.Status,
		Discount:      discount,
		Tax:           tax,
		ShippingCost:  shipping,
		RefNo:         r.RefNo,
		Notes:         r.Notes,
		TotalAmount:   total,
		BalanceAmount: balance,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.SupplierName != nil && r.SupplierSlug != nil {
		out.Supplier = &purchaseuc.Supplier{ID: r.SupplierID, Name: *r.SupplierName, Slug: *r.SupplierSlug}
	}
	return out, nil
}

func mapItemRow(r OrderItemRow) (purchaseuc.Item, error) {
	unitCost, err := decimal.NewFromString(r.UnitCost)
	if err != nil {
		return purchaseuc.Item{}, err
	}
	subTotal, err := decimal.NewFromString(r.SubTotal)
	if err != nil {
		return purchaseuc.Item{}, err
	}

	out := purchaseuc.Item{
		ID:           r.ID,
		OrderID:      r.OrderID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		UnitCost:     unitCost,
		SubTotal:     subTotal,
		CurrentStock: r.CurrentStock,
	}
	if r.ProdName != nil && r.ProdSlug != nil && r.ProdStockQty != nil {
		out.Product = &purchaseuc.ProductRef{
			ID:       r.ProductID,
			Name:     *r.ProdName,
			Slug:     *r.ProdSlug,
			StockQty: *r.ProdStockQty,
		}
	}
	return out, nil
}
