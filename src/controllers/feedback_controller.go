package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
	"github.com/emprendeuni/Backend-EmprendeUni/src/services"
)

// SendFeedback reenvía el feedback del usuario al webhook configurado
func SendFeedback(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input services.FeedbackInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Datos inválidos"))
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Missing required fields"))
		}

		profile := c.Locals("profile").(models.Profile)

		err := services.SendFeedback(c.Context(), cfg.FeedbackWebhookURL, input, profile.UserID, profile.FullName)
		if err != nil {
			return respondError(c, err)
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Feedback sent successfully",
		})
	}
}
