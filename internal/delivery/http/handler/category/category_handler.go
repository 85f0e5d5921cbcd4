package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dsentered/lasatastore/internal/delivery/http/respond"
	categoryuc "github.com/dsentered/lasatastore/internal/usecase/category"
)

type Handler struct {
	uc *categoryuc.Usecase
}

func New(uc *categoryuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in categoryuc.Input
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusCreated, out, "Category created successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in categoryuc.UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Category updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return failFrom(c, err)
	}
	return respond.OK(c, fiber.StatusOK, out, "Category deleted successfully")
}

func failFrom(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, categoryuc.ErrInvalidInput):
		return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, categoryuc.ErrSlugExists):
		return respond.Fail(c, fiber.StatusConflict, err.Error(), err)
	case errors.Is(err, categoryuc.ErrNotFound):
		return respond.Fail(c, fiber.StatusNotFound, err.Error(), err)
	default:
		return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
	}
}
