// Package memory holds an in-memory implementation of the purchase ledger
// Store. It backs the ledger unit tests and local development without
// Postgres; transactions are modeled as a state snapshot restored on error.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dsentered/lasatastore/internal/usecase/purchase"
)

type product struct {
	ID       string
	Name     string
	Slug     string
	StockQty int
}

type supplier struct {
	ID   string
	Name string
	Slug string
}

type state struct {
	suppliers map[string]supplier
	products  map[string]product
	orders    map[string]purchase.Order
	movements []purchase.Movement
}

func (s *state) clone() *state {
	cp := &state{
		suppliers: make(map[string]supplier, len(s.suppliers)),
		products:  make(map[string]product, len(s.products)),
		orders:    make(map[string]purchase.Order, len(s.orders)),
		movements: make([]purchase.Movement, len(s.movements)),
	}
	for k, v := range s.suppliers {
		cp.suppliers[k] = v
	}
	for k, v := range s.products {
		cp.products[k] = v
	}
	for k, v := range s.orders {
		v.Items = append([]purchase.Item(nil), v.Items...)
		cp.orders[k] = v
	}
	copy(cp.movements, s.movements)
	return cp
}

type PurchaseStore struct {
	mu sync.Mutex
	st *state
}

func NewPurchaseStore() *PurchaseStore {
	return &PurchaseStore{st: &state{
		suppliers: make(map[string]supplier),
		products:  make(map[string]product),
		orders:    make(map[string]purchase.Order),
	}}
}

var _ purchase.Store = (*PurchaseStore)(nil)

// InTx serializes mutations under one lock and snapshots the state before
// running fn: if fn fails, the snapshot is restored, so the caller observes
// all-or-nothing semantics just like a database transaction.
func (s *PurchaseStore) InTx(ctx context.Context, fn func(ctx context.Context, tx purchase.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *PurchaseStore) List(ctx context.Context) ([]purchase.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]purchase.Order, 0, len(s.st.orders))
	for id := range s.st.orders {
		out = append(out, *s.readOrder(id))
	}
	return out, nil
}

func (s *PurchaseStore) Get(ctx context.Context, id string) (*purchase.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.orders[id]; !ok {
		return nil, nil
	}
	return s.readOrder(id), nil
}

// readOrder returns a copy with supplier and product joins filled in.
func (s *PurchaseStore) readOrder(id string) *purchase.Order {
	o := s.st.orders[id]
	o.Items = append([]purchase.Item(nil), o.Items...)
	if sup, ok := s.st.suppliers[o.SupplierID]; ok {
		o.Supplier = &purchase.Supplier{ID: sup.ID, Name: sup.Name, Slug: sup.Slug}
	}
	for i := range o.Items {
		if p, ok := s.st.products[o.Items[i].ProductID]; ok {
			o.Items[i].Product = &purchase.ProductRef{ID: p.ID, Name: p.Name, Slug: p.Slug, StockQty: p.StockQty}
		}
	}
	return &o
}

// --- seeding / inspection helpers ---------------------------------------

func (s *PurchaseStore) AddSupplier(name, slug string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.st.suppliers[id] = supplier{ID: id, Name: name, Slug: slug}
	return id
}

func (s *PurchaseStore) AddProduct(name, slug string, stockQty int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.st.products[id] = product{ID: id, Name: name, Slug: slug, StockQty: stockQty}
	return id
}

// SetStock overwrites a product's quantity, modeling stock changes that
// happen outside the purchase flow (sales, manual corrections).
func (s *PurchaseStore) SetStock(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.products[productID]
	if !ok {
		return
	}
	p.StockQty = qty
	s.st.products[productID] = p
}

func (s *PurchaseStore) StockQty(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[productID].StockQty
}

func (s *PurchaseStore) Movements(productID string) []purchase.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]purchase.Movement, 0)
	for _, m := range s.st.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// --- transaction --------------------------------------------------------

type memTx struct {
	st *state
}

var _ purchase.Tx = (*memTx)(nil)

func (t *memTx) OrderExists(ctx context.Context, id string) (bool, error) {
	_, ok := t.st.orders[id]
	return ok, nil
}

func (t *memTx) GetOrderForUpdate(ctx context.Context, id string) (*purchase.Order, error) {
	o, ok := t.st.orders[id]
	if !ok {
		return nil, nil
	}
	o.Items = append([]purchase.Item(nil), o.Items...)
	return &o, nil
}

func (t *memTx) SupplierExists(ctx context.Context, id string) (bool, error) {
	_, ok := t.st.suppliers[id]
	return ok, nil
}

func (t *memTx) ProductExists(ctx context.Context, id string) (bool, error) {
	_, ok := t.st.products[id]
	return ok, nil
}

func (t *memTx) InsertOrder(ctx context.Context, in purchase.OrderInput) (*purchase.Order, error) {
	id := uuid.NewString()
	if in.ID != nil && *in.ID != "" {
		id = *in.ID
	}
	now := time.Now()
	o := purchase.Order{
		ID:            id,
		SupplierID:    in.SupplierID,
		Status:        in.Status,
		Discount:      *in.Discount,
		Tax:           *in.Tax,
		ShippingCost:  in.ShippingCost,
		RefNo:         *in.RefNo,
		Notes:         *in.Notes,
		TotalAmount:   *in.TotalAmount,
		BalanceAmount: *in.BalanceAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, purchase.Item{
			ID:           uuid.NewString(),
			OrderID:      id,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitCost:     *it.UnitCost,
			SubTotal:     *it.SubTotal,
			CurrentStock: *it.CurrentStock,
		})
	}
	t.st.orders[id] = o
	cp := o
	cp.Items = append([]purchase.Item(nil), o.Items...)
	return &cp, nil
}

func (t *memTx) ReplaceOrder(ctx context.Context, id string, in purchase.OrderInput) (*purchase.Order, error) {
	cur, ok := t.st.orders[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	o := purchase.Order{
		ID:            id,
		SupplierID:    in.SupplierID,
		Status:        in.Status,
		Discount:      *in.Discount,
		Tax:           *in.Tax,
		ShippingCost:  in.ShippingCost,
		RefNo:         *in.RefNo,
		Notes:         *in.Notes,
		TotalAmount:   *in.TotalAmount,
		BalanceAmount: *in.BalanceAmount,
		CreatedAt:     cur.CreatedAt,
		UpdatedAt:     now,
	}
	for _, it := range in.Items {
		o.Items = append(o.Items, purchase.Item{
			ID:           uuid.NewString(),
			OrderID:      id,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitCost:     *it.UnitCost,
			SubTotal:     *it.SubTotal,
			CurrentStock: *it.CurrentStock,
		})
	}
	t.st.orders[id] = o
	cp := o
	cp.Items = append([]purchase.Item(nil), o.Items...)
	return &cp, nil
}

func (t *memTx) DeleteOrder(ctx context.Context, id string) error {
	delete(t.st.orders, id)
	return nil
}

func (t *memTx) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	p, ok := t.st.products[productID]
	if !ok {
		return 0, purchase.ErrProductMissing
	}
	p.StockQty += delta
	t.st.products[productID] = p
	return p.StockQty, nil
}

func (t *memTx) AppendMovement(ctx context.Context, m purchase.Movement) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	t.st.movements = append(t.st.movements, m)
	return nil
}
