package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	exists    bool
	movements []Movement
}

func (s *fakeStore) Create(ctx context.Context, in Input) (*Product, error) {
	return &Product{ID: "p-1", Name: in.Name, Slug: in.Slug, UnitType: in.UnitType}, nil
}

func (s *fakeStore) List(ctx context.Context) ([]Product, error) { return nil, nil }

func (s *fakeStore) Update(ctx context.Context, id string, in Input) (*Product, error) {
	return &Product{ID: id, Name: in.Name, Slug: in.Slug}, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) (*Product, error) {
	return &Product{ID: id}, nil
}

func (s *fakeStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists, nil
}

func (s *fakeStore) ListMovements(ctx context.Context, productID string) ([]Movement, error) {
	return s.movements, nil
}

func validInput() Input {
	return Input{Name: "Widget", Slug: "widget", BrandID: "b-1", CategoryID: "c-1"}
}

func TestCreateValidatesUnitType(t *testing.T) {
	uc := New(&fakeStore{})
	ctx := context.Background()

	in := validInput()
	kg := UnitKg
	in.UnitType = &kg
	out, err := uc.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, UnitKg, *out.UnitType)

	bogus := "dozen"
	in.UnitType = &bogus
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Update(ctx, "p-1", in)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequiresBrandAndCategory(t *testing.T) {
	uc := New(&fakeStore{})
	ctx := context.Background()

	in := validInput()
	in.BrandID = ""
	_, err := uc.Create(ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)

	in = validInput()
	in.CategoryID = ""
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListMovementsChecksExistence(t *testing.T) {
	store := &fakeStore{movements: []Movement{{ID: "m-1", Delta: 5, Reason: "purchase_create"}}}
	uc := New(store)
	ctx := context.Background()

	_, err := uc.ListMovements(ctx, "p-1")
	require.ErrorIs(t, err, ErrNotFound)

	store.exists = true
	out, err := uc.ListMovements(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, 5, out[0].Delta)
}
