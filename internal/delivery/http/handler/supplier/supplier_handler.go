package supplier

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dsentered/lasatastore/internal/delivery/http/respond"
	supplieruc "github.com/dsentered/lasatastore/internal/usecase/supplier"
)

type Handler struct {
	uc *supplieruc.Usecase
}

func New(uc *supplieruc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in supplieruc.Input
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusCreated, out, "Supplier created successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in supplieruc.Input
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Supplier updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Supplier deleted successfully")
}

func failFrom(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, supplieruc.ErrInvalidInput):
		return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, supplieruc.ErrSlugExists):
		return respond.Fail(c, fiber.StatusConflict, err.Error(), err)
	case errors.Is(err, supplieruc.ErrNotFound):
		return respond.Fail(c, fiber.StatusNotFound, err.Error(), err)
	default:
		return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
	}
}
