package supplier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []Input
}

func (s *fakeStore) Create(ctx context.Context, in Input) (*Supplier, error) {
	s.created = append(s.created, in)
	return &Supplier{ID: "sup-1", Name: in.Name, Slug: in.Slug, SupplierType: in.SupplierType}, nil
}

func (s *fakeStore) List(ctx context.Context) ([]Supplier, error) { return nil, nil }

func (s *fakeStore) Update(ctx context.Context, id string, in Input) (*Supplier, error) {
	return &Supplier{ID: id, Name: in.Name, Slug: in.Slug}, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) (*Supplier, error) {
	return &Supplier{ID: id}, nil
}

func TestCreateValidatesSupplierType(t *testing.T) {
	store := &fakeStore{}
	uc := New(store)
	ctx := context.Background()

	manufacturer := TypeManufacturer
	out, err := uc.Create(ctx, Input{Name: "Acme", Slug: "acme", SupplierType: &manufacturer})
	require.NoError(t, err)
	require.Equal(t, TypeManufacturer, *out.SupplierType)

	// Absent type is fine; an unknown one is not.
	_, err = uc.Create(ctx, Input{Name: "Beta", Slug: "beta"})
	require.NoError(t, err)

	bogus := "SMUGGLER"
	_, err = uc.Create(ctx, Input{Name: "Gamma", Slug: "gamma", SupplierType: &bogus})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Len(t, store.created, 2)

	_, err = uc.Update(ctx, "sup-1", Input{Name: "Acme", Slug: "acme", SupplierType: &bogus})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRequiresNameAndSlug(t *testing.T) {
	uc := New(&fakeStore{})
	ctx := context.Background()

	_, err := uc.Create(ctx, Input{Slug: "acme"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Create(ctx, Input{Name: "Acme"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
