package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/controllers"
	"github.com/emprendeuni/Backend-EmprendeUni/src/middleware"
)

// FeedbackRoutes sets up the feedback relay route
func FeedbackRoutes(app *fiber.App, cfg *config.Config) {
	feedback := app.Group("/api/v1/feedback", middleware.ProtectRoute(cfg))

	feedback.Post("/", controllers.SendFeedback(cfg))
}
