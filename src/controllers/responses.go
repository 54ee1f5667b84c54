package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
)

var validate = validator.New()

// respondError traduce el tipo de fallo de una operación del núcleo a un
// código de estado y un texto para el usuario. El tipo de fallo siempre es
// determinable; aquí solo se elige la copia.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Datos inválidos"))

	case errors.Is(err, apperrors.ErrDuplicateRequest):
		return c.Status(fiber.StatusConflict).JSON(lib.MessageResponse("A connection request already exists"))

	case errors.Is(err, apperrors.ErrAlreadyConnected):
		return c.Status(fiber.StatusConflict).JSON(lib.MessageResponse("You are already connected with this user"))

	case errors.Is(err, apperrors.ErrAlreadyResolved):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This request has already been processed"))

	case errors.Is(err, apperrors.ErrPolicyDenied):
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("No tienes permisos para enviar esta solicitud"))

	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized"))

	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Not found"))
	}

	lib.Logger.Error("unexpected error handling request",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
}
