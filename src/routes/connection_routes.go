package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/controllers"
	"github.com/emprendeuni/Backend-EmprendeUni/src/middleware"
)

// ConnectionRoutes sets up contact-request routes: send, accept, reject,
// pending inbox and the list of established connections
func ConnectionRoutes(app *fiber.App, cfg *config.Config) {
	connection := app.Group("/api/v1/connections", middleware.ProtectRoute(cfg))

	connection.Post("/request/:userId", controllers.SendContactRequest)
	connection.Put("/accept/:requestId", controllers.AcceptContactRequest)
	connection.Put("/reject/:requestId", controllers.RejectContactRequest)
	connection.Get("/requests", controllers.GetContactRequests)
	connection.Get("/", controllers.GetUserConnections)
}
