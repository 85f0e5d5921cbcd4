package category

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSlugExists   = errors.New("category with this slug already exists")
	ErrNotFound     = errors.New("category not found")
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ParentID  *string   `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store interface {
	Create(ctx context.Context, name, slug string, parentID *string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id string, name, slug, parentID *string) (*Category, error)
	Delete(ctx context.Context, id string) (*Category, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

type Input struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId"`
}

func (u *Usecase) Create(ctx context.Context, in Input) (*Category, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Create(ctx, in.Name, in.Slug, in.ParentID)
}

func (u *Usecase) List(ctx context.Context) ([]Category, error) {
	return u.store.List(ctx)
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	ParentID *string `json:"parentId"`
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Category, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Update(ctx, id, in.Name, in.Slug, in.ParentID)
}

func (u *Usecase) Delete(ctx context.Context, id string) (*Category, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}
