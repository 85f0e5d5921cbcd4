package purchase

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dsentered/lasatastore/internal/delivery/http/respond"
	purchaseuc "github.com/dsentered/lasatastore/internal/usecase/purchase"
)

type Handler struct {
	uc *purchaseuc.Usecase
}

func New(uc *purchaseuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in purchaseuc.OrderInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusCreated, out, "Purchase created successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var in purchaseuc.OrderInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Purchase updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Purchase deleted successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func failFrom(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, purchaseuc.ErrInvalidInput):
		return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, purchaseuc.ErrOrderExists):
		return respond.Fail(c, fiber.StatusConflict, "Purchase with this ID already exists", err)
	case errors.Is(err, purchaseuc.ErrOrderMissing):
		return respond.Fail(c, fiber.StatusNotFound, "Purchase Order not found", err)
	case errors.Is(err, purchaseuc.ErrSupplierMissing),
		errors.Is(err, purchaseuc.ErrProductMissing):
		return respond.Fail(c, fiber.StatusNotFound, err.Error(), err)
	case errors.Is(err, purchaseuc.ErrInsufficientStock):
		return respond.Fail(c, fiber.StatusConflict, err.Error(), err)
	default:
		return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
	}
}
