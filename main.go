package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/realtime"
	"github.com/emprendeuni/Backend-EmprendeUni/src/routes"
)

func main() {

	cfg := config.Load()

	lib.InitLogger(cfg.LogLevel)
	defer lib.Logger.Sync() //nolint:errcheck

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Connect to SQLite database
	lib.ConnectDB(cfg.DBPath)

	lib.AutoMigrate()

	// Registrar el feed de cambios sobre las tablas de mensajería
	hub := realtime.NewHub()
	if err := lib.DB.Use(realtime.NewChangefeedHook(hub)); err != nil {
		log.Fatal("Failed to register changefeed hook:", err)
	}

	// Register routes
	routes.UserRoutes(app, cfg)
	routes.ConnectionRoutes(app, cfg)
	routes.MessageRoutes(app, cfg)
	routes.FeedbackRoutes(app, cfg)
	routes.RealtimeRoutes(app, cfg, hub)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	lib.Logger.Info("server starting", zap.String("port", cfg.Port))

	// Start the Fiber server on the specified port
	if err := app.Listen(":" + cfg.Port); err != nil {
		lib.Logger.Fatal("server stopped", zap.Error(err))
	}
}
