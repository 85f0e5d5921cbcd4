package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dsentered/lasatastore/internal/delivery/http/respond"
	authuc "github.com/dsentered/lasatastore/internal/usecase/auth"
)

type Handler struct {
	uc *authuc.Usecase
}

func New(uc *authuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var in authuc.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, authuc.ErrInvalidInput):
			return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, authuc.ErrEmailExists):
			return respond.Fail(c, fiber.StatusConflict, err.Error(), err)
		default:
			return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
		}
	}
	return respond.OK(c, fiber.StatusCreated, out, "User registered successfully")
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var in authuc.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid json", err)
	}

	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, authuc.ErrInvalidInput):
			return respond.Fail(c, fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, authuc.ErrInvalidCredentials), errors.Is(err, authuc.ErrInactiveUser):
			return respond.Fail(c, fiber.StatusUnauthorized, err.Error(), err)
		default:
			return respond.Fail(c, fiber.StatusInternalServerError, "Something went wrong", err)
		}
	}
	return respond.OK(c, fiber.StatusOK, out, "User logged in successfully")
}
