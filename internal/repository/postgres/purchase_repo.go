package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
)

// Row types carry numeric columns as ::text and are parsed into decimals
// at the mapping boundary.
type OrderRow struct {
	ID            string
	SupplierID    string
	SupplierName  *string
	SupplierSlug  *string
	Status        string
	Discount      string
	Tax           string
	ShippingCost  *string
	RefNo         string
	Notes         string
	TotalAmount   string
	BalanceAmount string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItemRow struct {
	ID           string
	OrderID      string
	ProductID    string
	ProductName  string
	Quantity     int
	UnitCost     string
	SubTotal     string
	CurrentStock int
	ProdName     *string
	ProdSlug     *string
	ProdStockQty *int
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const orderSelect = `
SELECT
  po.id::text, po.supplier_id::text, s.name, s.slug, po.status,
  po.discount::text, po.tax::text, po.shipping_cost::text,
  po.ref_no, po.notes, po.total_amount::text, po.balance_amount::text,
  po.created_at, po.updated_at
FROM purchase_orders po
JOIN suppliers s ON s.id = po.supplier_id
`

const itemSelect = `
SELECT
  i.id::text, i.purchase_order_id::text, i.product_id::text, i.product_name,
  i.quantity, i.unit_cost::text, i.sub_total::text, i.current_stock,
  p.name, p.slug, p.stock_qty
FROM purchase_order_items i
JOIN products p ON p.id = i.product_id
`

func orderExists(ctx context.Context, q queryer, id string) (bool, error) {
	const sql = `SELECT 1 FROM purchase_orders WHERE id = $1::uuid;`
	var one int
	if err := q.QueryRow(ctx, sql, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func supplierExists(ctx context.Context, q queryer, id string) (bool, error) {
	const sql = `SELECT 1 FROM suppliers WHERE id = $1::uuid;`
	var one int
	if err := q.QueryRow(ctx, sql, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func productExists(ctx context.Context, q queryer, id string) (bool, error) {
	const sql = `SELECT 1 FROM products WHERE id = $1::uuid;`
	var one int
	if err := q.QueryRow(ctx, sql, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// getOrderForUpdate locks the order header row for the duration of the
// transaction so two concurrent updates of the same order serialize.
func getOrderForUpdate(ctx context.Context, tx pgx.Tx, id string) (*OrderRow, []OrderItemRow, error) {
	const lockSQL = `SELECT 1 FROM purchase_orders WHERE id = $1::uuid FOR UPDATE;`
	var one int
	if err := tx.QueryRow(ctx, lockSQL, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	row, err := scanOrderRow(tx.QueryRow(ctx, orderSelect+`WHERE po.id = $1::uuid;`, id))
	if err != nil {
		return nil, nil, err
	}

	items, err := listItemRows(ctx, tx, `WHERE i.purchase_order_id = $1::uuid ORDER BY i.created_at;`, id)
	if err != nil {
		return nil, nil, err
	}
	return row, items, nil
}

func insertOrder(ctx context.Context, tx pgx.Tx, in purchaseuc.OrderInput) (*OrderRow, error) {
	const q = `
INSERT INTO purchase_orders (id, supplier_id, status, discount, tax, shipping_cost, ref_no, notes, total_amount, balance_amount)
VALUES (COALESCE($1::uuid, gen_random_uuid()), $2::uuid, $3, $4::numeric, $5::numeric, $6::numeric, $7, $8, $9::numeric, $10::numeric)
RETURNING id::text;
`
	var id string
	if err := tx.QueryRow(ctx, q,
		in.ID, in.SupplierID, in.Status,
		in.Discount.String(), in.Tax.String(), decimalPtrString(in.ShippingCost),
		*in.RefNo, *in.Notes, in.TotalAmount.String(), in.BalanceAmount.String(),
	).Scan(&id); err != nil {
		return nil, err
	}

	if err := insertItems(ctx, tx, id, in.Items); err != nil {
		return nil, err
	}
	return scanOrderRow(tx.QueryRow(ctx, orderSelect+`WHERE po.id = $1::uuid;`, id))
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID string, items []purchaseuc.ItemInput) error {
	const q = `
INSERT INTO purchase_order_items (purchase_order_id, product_id, product_name, quantity, unit_cost, sub_total, current_stock)
VALUES ($1::uuid, $2::uuid, $3, $4, $5::numeric, $6::numeric, $7);
`
	for _, it := range items {
		if _, err := tx.Exec(ctx, q,
			orderID, it.ProductID, it.ProductName, it.Quantity,
			it.UnitCost.String(), it.SubTotal.String(), *it.CurrentStock,
		); err != nil {
			return err
		}
	}
	return nil
}

func replaceOrder(ctx context.Context, tx pgx.Tx, id string, in purchaseuc.OrderInput) (*OrderRow, error) {
	const del = `DELETE FROM purchase_order_items WHERE purchase_order_id = $1::uuid;`
	if _, err := tx.Exec(ctx, del, id); err != nil {
		return nil, err
	}

	const upd = `
UPDATE purchase_orders
SET supplier_id = $2::uuid,
    status = $3,
    discount = $4::numeric,
    tax = $5::numeric,
    shipping_cost = $6::numeric,
    ref_no = $7,
    notes = $8,
    total_amount = $9::numeric,
    balance_amount = $10::numeric,
    updated_at = now()
WHERE id = $1::uuid;
`
	if _, err := tx.Exec(ctx, upd,
		id, in.SupplierID, in.Status,
		in.Discount.String(), in.Tax.String(), decimalPtrString(in.ShippingCost),
		*in.RefNo, *in.Notes, in.TotalAmount.String(), in.BalanceAmount.String(),
	); err != nil {
		return nil, err
	}

	if err := insertItems(ctx, tx, id, in.Items); err != nil {
		return nil, err
	}
	return scanOrderRow(tx.QueryRow(ctx, orderSelect+`WHERE po.id = $1::uuid;`, id))
}

func deleteOrder(ctx context.Context, tx pgx.Tx, id string) error {
	// Items go with the order via ON DELETE CASCADE.
	const q = `DELETE FROM purchase_orders WHERE id = $1::uuid;`
	_, err := tx.Exec(ctx, q, id)
	return err
}

// adjustStock applies a relative delta to the product's materialized stock
// quantity. The UPDATE takes a row lock, so concurrent deltas serialize
// and none are lost.
func adjustStock(ctx context.Context, tx pgx.Tx, productID string, delta int) (int, error) {
	const q = `
UPDATE products
SET stock_qty = stock_qty + $2,
    updated_at = now()
WHERE id = $1::uuid
RETURNING stock_qty;
`
	var newQty int
	if err := tx.QueryRow(ctx, q, productID, delta).Scan(&newQty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, purchaseuc.ErrProductMissing
		}
		return 0, err
	}
	return newQty, nil
}

func appendMovement(ctx context.Context, tx pgx.Tx, m purchaseuc.Movement) error {
	const q = `
INSERT INTO stock_movements (product_id, delta, reason, purchase_order_id)
VALUES ($1::uuid, $2, $3, $4::uuid);
`
	_, err := tx.Exec(ctx, q, m.ProductID, m.Delta, m.Reason, m.OrderID)
	return err
}

func listItemRows(ctx context.Context, q queryer, where string, args ...any) ([]OrderItemRow, error) {
	rows, err := q.Query(ctx, itemSelect+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItemRow
	for rows.Next() {
		var it OrderItemRow
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitCost, &it.SubTotal, &it.CurrentStock,
			&it.ProdName, &it.ProdSlug, &it.ProdStockQty,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanOrderRow(row pgx.Row) (*OrderRow, error) {
	var out OrderRow
	if err := row.Scan(
		&out.ID, &out.SupplierID, &out.SupplierName, &out.SupplierSlug,
		&out.Status, &out.Discount, &out.Tax, &out.ShippingCost,
		&out.RefNo, &out.Notes, &out.TotalAmount, &out.BalanceAmount,
		&out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func decimalPtrString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
