package brand

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSlugExists   = errors.New("brand with this slug already exists")
	ErrNotFound     = errors.New("brand not found")
)

type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store interface {
	// Create returns ErrSlugExists when the slug is already taken.
	Create(ctx context.Context, name, slug string) (*Brand, error)
	List(ctx context.Context) ([]Brand, error)
	// Update and Delete return ErrNotFound when no brand matches.
	Update(ctx context.Context, id string, name, slug *string) (*Brand, error)
	Delete(ctx context.Context, id string) (*Brand, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

type Input struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (u *Usecase) Create(ctx context.Context, in Input) (*Brand, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, in.Name, in.Slug)
}

func (u *Usecase) List(ctx context.Context) ([]Brand, error) {
	return u.store.List(ctx)
}

type UpdateInput struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Brand, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Update(ctx, id, in.Name, in.Slug)
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Brand, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}
