package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/controllers"
	"github.com/emprendeuni/Backend-EmprendeUni/src/realtime"
)

// RealtimeRoutes sets up the websocket endpoint for the change feed
func RealtimeRoutes(app *fiber.App, cfg *config.Config, hub *realtime.Hub) {
	app.Get("/api/v1/realtime", controllers.RealtimeUpgrade(cfg), controllers.RealtimeHandler(hub))
}
