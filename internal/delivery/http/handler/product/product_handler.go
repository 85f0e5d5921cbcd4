package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dsentered/lasatastore/internal/delivery/http/respond"
	productuc "github.com/dsentered/lasatastore/internal/usecase/product"
)

type Handler struct {
	uc *productuc.Usecase
}

func New(uc *productuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in productuc.Input
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusCreated, out, "Product created successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in productuc.Input
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Product updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Product deleted successfully")
}

// Movements exposes the stock ledger entries for one product.
func (h *Handler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func failFrom(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, productuc.ErrInvalidInput):
		return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, productuc.ErrSlugExists):
		return respond.Fail(c, fiber.StatusConflict, err.Error(), err)
	case errors.Is(err, productuc.ErrNotFound):
		return respond.Fail(c, fiber.StatusNotFound, err.Error(), err)
	default:
		return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
	}
}
