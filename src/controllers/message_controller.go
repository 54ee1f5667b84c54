package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/apperrors"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/services"
)

type sendMessageBody struct {
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Content string `json:"content" validate:"required,max=4000"`
}

// SendMessage sends a chat message to a connected user
func SendMessage(c *fiber.Ctx) error {
	receiverID := c.Params("userId")
	if receiverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	userID := c.Locals("userID").(string)

	var body sendMessageBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Datos inválidos"))
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Datos inválidos"))
	}

	message, err := services.SendMessage(lib.DB, userID, receiverID, body.Subject, body.Content)
	if err != nil {
		// La falta de conexión es la señal de seguridad primaria del
		// núcleo; se muestra con su propia copia, nunca como error genérico
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse(
				"Debes estar conectado con esta persona para enviarle mensajes"))
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetConversation returns the full conversation with another user in
// chronological order, marking the caller's unread messages as read
func GetConversation(c *fiber.Ctx) error {
	otherID := c.Params("userId")
	if otherID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	userID := c.Locals("userID").(string)

	messages, err := services.Conversation(lib.DB, userID, otherID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// GetInbox returns every message involving the authenticated user, newest
// first, with counterpart profile summaries
func GetInbox(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	messages, err := services.Inbox(lib.DB, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// GetUnreadCount returns the number of unread messages addressed to the
// authenticated user
func GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	count, err := services.UnreadCount(lib.DB, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"unread": count,
	})
}
