package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/dsentered/lasatastore/internal/db"
	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
)

// --- Helpers -------------------------------------------------------------

func mustTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	require.NoError(t, db.RunMigrations(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)

	t.Cleanup(func() { pool.Close() })
	return pool
}

func mustQueryStr(t *testing.T, pool *pgxpool.Pool, q string, args ...any) string {
	t.Helper()
	var out string
	err := pool.QueryRow(context.Background(), q, args...).Scan(&out)
	require.NoError(t, err)
	return out
}

func mustQueryInt(t *testing.T, pool *pgxpool.Pool, q string, args ...any) int {
	t.Helper()
	var out int
	err := pool.QueryRow(context.Background(), q, args...).Scan(&out)
	require.NoError(t, err)
	return out
}

// seed minimal dataset: brand, category, supplier, one product at stock 10.
func seedSupplierProduct(t *testing.T, pool *pgxpool.Pool) (supplierID, productID string) {
	t.Helper()

	suffix := time.Now().Format("150405.000000")

	brandID := mustQueryStr(t, pool, `
		INSERT INTO brands (name, slug)
		VALUES ('Test Brand', 'test-brand-`+suffix+`')
		RETURNING id::text;
	`)

	categoryID := mustQueryStr(t, pool, `
		INSERT INTO categories (name, slug)
		VALUES ('Test Category', 'test-category-`+suffix+`')
		RETURNING id::text;
	`)

	supplierID = mustQueryStr(t, pool, `
		INSERT INTO suppliers (name, slug)
		VALUES ('Test Supplier', 'test-supplier-`+suffix+`')
		RETURNING id::text;
	`)

	productID = mustQueryStr(t, pool, `
		INSERT INTO products (slug, name, stock_qty, brand_id, category_id)
		VALUES ('test-product-`+suffix+`', 'Test Product', 10, $1::uuid, $2::uuid)
		RETURNING id::text;
	`, brandID, categoryID)

	return supplierID, productID
}

func stockQty(t *testing.T, pool *pgxpool.Pool, productID string) int {
	t.Helper()
	return mustQueryInt(t, pool, `SELECT stock_qty FROM products WHERE id = $1::uuid`, productID)
}

// --- Tests ---------------------------------------------------------------

func TestPurchaseLifecycle(t *testing.T) {
	pool := mustTestPool(t)
	supplierID, productID := seedSupplierProduct(t, pool)

	uc := purchaseuc.New(NewPurchaseStore(pool), purchaseuc.PolicyAllowNegative, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, purchaseuc.OrderInput{
		SupplierID: supplierID,
		Status:     purchaseuc.StatusUnpaid,
		Items: []purchaseuc.ItemInput{
			{ProductID: productID, ProductName: "Test Product", Quantity: 5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 15, stockQty(t, pool, productID))

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.NotNil(t, got.Supplier)
	require.Equal(t, supplierID, got.Supplier.ID)

	_, err = uc.Update(ctx, created.ID, purchaseuc.OrderInput{
		SupplierID: supplierID,
		Status:     purchaseuc.StatusPaid,
		Items: []purchaseuc.ItemInput{
			{ProductID: productID, ProductName: "Test Product", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 12, stockQty(t, pool, productID))

	_, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 10, stockQty(t, pool, productID))

	// Items cascade away with the order; the ledger keeps the full history.
	require.Equal(t, 0, mustQueryInt(t, pool,
		`SELECT count(*) FROM purchase_order_items WHERE purchase_order_id = $1::uuid`, created.ID))
	require.Equal(t, 4, mustQueryInt(t, pool,
		`SELECT count(*) FROM stock_movements WHERE product_id = $1::uuid`, productID))
	require.Equal(t, 0, mustQueryInt(t, pool,
		`SELECT coalesce(sum(delta), 0)::int FROM stock_movements WHERE product_id = $1::uuid`, productID))
}

func TestCreateDuplicateIDTranslatesUniqueViolation(t *testing.T) {
	pool := mustTestPool(t)
	supplierID, productID := seedSupplierProduct(t, pool)

	uc := purchaseuc.New(NewPurchaseStore(pool), purchaseuc.PolicyAllowNegative, nil)
	ctx := context.Background()

	in := purchaseuc.OrderInput{
		SupplierID: supplierID,
		Status:     purchaseuc.StatusUnpaid,
		Items: []purchaseuc.ItemInput{
			{ProductID: productID, ProductName: "Test Product", Quantity: 1},
		},
	}
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	in.ID = &created.ID
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, purchaseuc.ErrOrderExists)
	require.Equal(t, 11, stockQty(t, pool, productID))
}

func TestRejectPolicyRollsBackInDatabase(t *testing.T) {
	pool := mustTestPool(t)
	supplierID, productID := seedSupplierProduct(t, pool)

	allow := purchaseuc.New(NewPurchaseStore(pool), purchaseuc.PolicyAllowNegative, nil)
	reject := purchaseuc.New(NewPurchaseStore(pool), purchaseuc.PolicyRejectNegative, nil)
	ctx := context.Background()

	created, err := allow.Create(ctx, purchaseuc.OrderInput{
		SupplierID: supplierID,
		Status:     purchaseuc.StatusUnpaid,
		Items: []purchaseuc.ItemInput{
			{ProductID: productID, ProductName: "Test Product", Quantity: 5},
		},
	})
	require.NoError(t, err)

	// Sell the stock down below the reversal amount.
	_, err = pool.Exec(ctx, `UPDATE products SET stock_qty = 2 WHERE id = $1::uuid`, productID)
	require.NoError(t, err)

	_, err = reject.Delete(ctx, created.ID)
	require.ErrorIs(t, err, purchaseuc.ErrInsufficientStock)

	require.Equal(t, 2, stockQty(t, pool, productID))
	require.Equal(t, 1, mustQueryInt(t, pool,
		`SELECT count(*) FROM purchase_orders WHERE id = $1::uuid`, created.ID))
}
