package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/services"
)

// SendContactRequest sends a contact request from the authenticated user to another user
func SendContactRequest(c *fiber.Ctx) error {
	// Obtener ID del usuario destino desde los parámetros
	targetUserID := c.Params("userId")
	if targetUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	// Obtener usuario autenticado del middleware
	userID := c.Locals("userID").(string)

	// Validar que no se envíe solicitud a uno mismo
	if userID == targetUserID {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("You can't send a connection request to yourself"))
	}

	var body struct {
		Message string `json:"message"`
	}
	// El mensaje es opcional; un cuerpo vacío usa la invitación estándar
	_ = c.BodyParser(&body)

	request, err := services.SubmitContactRequest(lib.DB, userID, targetUserID, body.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Connection request sent successfully",
		"request": request,
	})
}

// AcceptContactRequest accepts a pending contact request, unlocking messaging
// and the connected-profile projection for the pair
func AcceptContactRequest(c *fiber.Ctx) error {
	return resolveContactRequest(c, services.DecisionAccept, "Connection accepted successfully")
}

// RejectContactRequest rejects a pending contact request
func RejectContactRequest(c *fiber.Ctx) error {
	return resolveContactRequest(c, services.DecisionReject, "Connection request rejected")
}

func resolveContactRequest(c *fiber.Ctx, decision services.Decision, successMessage string) error {
	// Obtener ID de la solicitud desde los parámetros
	requestIDStr := c.Params("requestId")
	requestID, err := strconv.ParseUint(requestIDStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	// Obtener usuario autenticado del middleware
	userID := c.Locals("userID").(string)

	request, err := services.ResolveContactRequest(lib.DB, uint(requestID), userID, decision)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": successMessage,
		"request": request,
	})
}

// GetContactRequests returns all pending contact requests for the authenticated user
func GetContactRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	requests, err := services.PendingRequestsFor(lib.DB, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// GetUserConnections returns all users connected to the authenticated user
func GetUserConnections(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	connections, err := services.ConnectionsOf(lib.DB, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(connections)
}
