package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/models"
	"github.com/emprendeuni/Backend-EmprendeUni/src/services"
)

// GetCurrentProfile returns the authenticated user's own profile, including
// whether it is complete enough to enter the discovery directory
func GetCurrentProfile(c *fiber.Ctx) error {
	profile := c.Locals("profile").(models.Profile)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile":  profile,
		"complete": profile.IsComplete(),
	})
}

// UpdateProfile updates the authenticated user's profile with allowed fields
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var patch services.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Error al analizar el cuerpo de la solicitud",
		})
	}

	profile, err := services.UpdateProfile(lib.DB, userID, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile":  profile,
		"complete": profile.IsComplete(),
	})
}

// Discover lists complete profiles for the directory, without names or
// contact fields
func Discover(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	filters := services.DiscoveryFilters{
		UserType:      c.Query("user_type"),
		ProjectSector: c.Query("project_sector"),
		Skill:         c.Query("skill"),
	}

	profiles, err := services.Discover(lib.DB, userID, filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetContactDetails returns the expanded profile projection of a connected
// user. Without a connection the response body is null: absence is the
// default state, not an error.
func GetContactDetails(c *fiber.Ctx) error {
	targetID := c.Params("userId")
	if targetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	userID := c.Locals("userID").(string)

	details, err := services.ContactDetails(lib.DB, userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(details)
}
