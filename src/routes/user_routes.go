package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/controllers"
	"github.com/emprendeuni/Backend-EmprendeUni/src/middleware"
)

// UserRoutes sets up profile routes: own profile, profile update, discovery
// directory and the connected-only contact details projection
func UserRoutes(app *fiber.App, cfg *config.Config) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute(cfg))

	user.Get("/me", controllers.GetCurrentProfile)
	user.Put("/profile", controllers.UpdateProfile)
	user.Get("/discovery", controllers.Discover)
	user.Get("/:userId/contact-details", controllers.GetContactDetails)
}
