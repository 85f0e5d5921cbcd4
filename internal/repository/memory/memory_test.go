package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsentered/lasatastore/internal/usecase/purchase"
)

func TestInTxRestoresSnapshotOnError(t *testing.T) {
	s := NewPurchaseStore()
	prodID := s.AddProduct("Widget", "widget", 10)

	boom := errors.New("boom")
	err := s.InTx(context.Background(), func(ctx context.Context, tx purchase.Tx) error {
		if _, err := tx.AdjustStock(ctx, prodID, 5); err != nil {
			return err
		}
		if err := tx.AppendMovement(ctx, purchase.Movement{ProductID: prodID, Delta: 5, Reason: "test"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Equal(t, 10, s.StockQty(prodID))
	require.Empty(t, s.Movements(prodID))
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	s := NewPurchaseStore()
	prodID := s.AddProduct("Widget", "widget", 10)

	err := s.InTx(context.Background(), func(ctx context.Context, tx purchase.Tx) error {
		got, err := tx.AdjustStock(ctx, prodID, -4)
		if err != nil {
			return err
		}
		require.Equal(t, 6, got)
		return tx.AppendMovement(ctx, purchase.Movement{ProductID: prodID, Delta: -4, Reason: "test"})
	})
	require.NoError(t, err)

	require.Equal(t, 6, s.StockQty(prodID))
	require.Len(t, s.Movements(prodID), 1)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	s := NewPurchaseStore()

	err := s.InTx(context.Background(), func(ctx context.Context, tx purchase.Tx) error {
		_, err := tx.AdjustStock(ctx, "no-such-product", 1)
		return err
	})
	require.ErrorIs(t, err, purchase.ErrProductMissing)
}
