package purchase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dsentered/lasatastore/internal/metrics"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrOrderExists       = errors.New("purchase order already exists")
	ErrOrderMissing      = errors.New("purchase order not found")
	ErrSupplierMissing   = errors.New("supplier not found")
	ErrProductMissing    = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Stock policies for decrements that would take stock_qty below zero.
// "allow" keeps the historical behavior (negative stock represents
// backorders); "reject" aborts the whole transaction instead.
const (
	PolicyAllowNegative  = "allow"
	PolicyRejectNegative = "reject"
)

// Store is the transactional contract the ledger runs on. Every mutation
// happens inside one InTx call: either all reads/writes commit or none do.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
}

// Tx is the set of operations composable inside one transaction.
// GetOrderForUpdate must lock the order row for the duration of the
// transaction; AdjustStock must apply the delta atomically and report the
// resulting quantity.
type Tx interface {
	OrderExists(ctx context.Context, id string) (bool, error)
	GetOrderForUpdate(ctx context.Context, id string) (*Order, error)
	SupplierExists(ctx context.Context, id string) (bool, error)
	ProductExists(ctx context.Context, id string) (bool, error)
	InsertOrder(ctx context.Context, in OrderInput) (*Order, error)
	ReplaceOrder(ctx context.Context, id string, in OrderInput) (*Order, error)
	DeleteOrder(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
	AppendMovement(ctx context.Context, m Movement) error
}

// Usecase keeps product stock quantities synchronized with purchase order
// item quantities. Purchase orders are stock-increasing events (goods
// received): create applies +quantity per item, delete reverses it, update
// reverses the old item set before applying the new one.
type Usecase struct {
	store  Store
	policy string
	log    *zap.Logger
}

func New(store Store, stockPolicy string, log *zap.Logger) *Usecase {
	if stockPolicy != PolicyRejectNegative {
		stockPolicy = PolicyAllowNegative
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{store: store, policy: stockPolicy, log: log}
}

func (u *Usecase) Create(ctx context.Context, in OrderInput) (*Order, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	in.normalize()

	var out *Order
	err := u.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		// Conflict check runs inside the transaction so a concurrent create
		// with the same id cannot slip between check and insert.
		if in.ID != nil && *in.ID != "" {
			exists, err := tx.OrderExists(ctx, *in.ID)
			if err != nil {
				return err
			}
			if exists {
				return ErrOrderExists
			}
		}

		if err := u.checkRefs(ctx, tx, in); err != nil {
			return err
		}

		created, err := tx.InsertOrder(ctx, in)
		if err != nil {
			return err
		}

		for _, it := range created.Items {
			if it.Quantity == 0 {
				continue
			}
			if err := u.applyDelta(ctx, tx, it.ProductID, it.Quantity, ReasonCreate, created.ID); err != nil {
				return err
			}
		}

		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	u.log.Info("purchase order created",
		zap.String("order_id", out.ID),
		zap.String("supplier_id", out.SupplierID),
		zap.Int("items", len(out.Items)))
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id string, in OrderInput) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	in.normalize()

	var out *Order
	err := u.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		cur, err := tx.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return ErrOrderMissing
		}

		if err := u.checkRefs(ctx, tx, in); err != nil {
			return err
		}

		// Reverse: undo the effect of the previous item set. A product
		// appearing in both sets sees a decrement now and an increment
		// later, never a combined write.
		for _, it := range cur.Items {
			if it.Quantity == 0 {
				continue
			}
			if err := u.applyDelta(ctx, tx, it.ProductID, -it.Quantity, ReasonUpdateReverse, id); err != nil {
				return err
			}
		}

		// Replace: drop the old items, rewrite the scalar fields, insert
		// the new item set.
		replaced, err := tx.ReplaceOrder(ctx, id, in)
		if err != nil {
			return err
		}

		// Apply: stock for the new item set.
		for _, it := range replaced.Items {
			if it.Quantity == 0 {
				continue
			}
			if err := u.applyDelta(ctx, tx, it.ProductID, it.Quantity, ReasonUpdateApply, id); err != nil {
				return err
			}
		}

		out = replaced
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersUpdated.Inc()
	u.log.Info("purchase order updated", zap.String("order_id", id))
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	var out *Order
	err := u.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		cur, err := tx.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return ErrOrderMissing
		}

		for _, it := range cur.Items {
			if it.Quantity == 0 {
				continue
			}
			if err := u.applyDelta(ctx, tx, it.ProductID, -it.Quantity, ReasonDelete, id); err != nil {
				return err
			}
		}

		if err := tx.DeleteOrder(ctx, id); err != nil {
			return err
		}

		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersDeleted.Inc()
	u.log.Info("purchase order deleted", zap.String("order_id", id))
	return out, nil
}

func (u *Usecase) List(ctx context.Context) ([]Order, error) {
	return u.store.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrOrderMissing
	}
	return out, nil
}

// applyDelta mutates the product's stock projection and records the
// movement in the append-only ledger, both inside the caller's transaction.
func (u *Usecase) applyDelta(ctx context.Context, tx Tx, productID string, delta int, reason string, orderID string) error {
	newQty, err := tx.AdjustStock(ctx, productID, delta)
	if err != nil {
		return err
	}
	if u.policy == PolicyRejectNegative && newQty < 0 {
		return fmt.Errorf("%w: product=%s would drop to %d", ErrInsufficientStock, productID, newQty)
	}
	if err := tx.AppendMovement(ctx, Movement{
		ProductID: productID,
		Delta:     delta,
		Reason:    reason,
		OrderID:   &orderID,
	}); err != nil {
		return err
	}
	metrics.StockMovements.WithLabelValues(reason).Inc()
	return nil
}

func (u *Usecase) checkRefs(ctx context.Context, tx Tx, in OrderInput) error {
	ok, err := tx.SupplierExists(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSupplierMissing, in.SupplierID)
	}
	for _, it := range in.Items {
		ok, err := tx.ProductExists(ctx, it.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrProductMissing, it.ProductID)
		}
	}
	return nil
}

func validateInput(in OrderInput) error {
	if in.SupplierID == "" {
		return ErrInvalidInput
	}
	// Two items may reference the same product: each is a separate lot
	// entry and their deltas sum. Negative quantities are rejected.
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity < 0 {
			return ErrInvalidInput
		}
	}
	return nil
}
