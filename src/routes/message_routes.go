package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/controllers"
	"github.com/emprendeuni/Backend-EmprendeUni/src/middleware"
)

// MessageRoutes sets up messaging routes: send, per-contact conversation,
// inbox and unread count
func MessageRoutes(app *fiber.App, cfg *config.Config) {
	message := app.Group("/api/v1/messages", middleware.ProtectRoute(cfg))

	message.Post("/send/:userId", controllers.SendMessage)
	message.Get("/conversation/:userId", controllers.GetConversation)
	message.Get("/unread-count", controllers.GetUnreadCount)
	message.Get("/", controllers.GetInbox)
}
