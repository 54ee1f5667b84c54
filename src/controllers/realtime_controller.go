package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/realtime"
)

// RealtimeUpgrade autentica la petición de upgrade del websocket. El token
// viaja como parámetro de consulta porque los navegadores no permiten
// cabeceras en el handshake.
func RealtimeUpgrade(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		claims, err := lib.VerifyJWT(c.Query("token"), cfg.JWTSecret)
		if err != nil || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No autorizado - Token inválido"))
		}

		identity, ok := lib.IdentityFromClaims(claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No autorizado - Token inválido"))
		}

		c.Locals("userID", identity.Subject)
		return c.Next()
	}
}

// RealtimeHandler entrega el feed de cambios por websocket. La suscripción
// vive exactamente lo que vive la conexión: se da de baja al cerrarse el
// socket, sin canales huérfanos.
func RealtimeHandler(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("userID").(string)
		if userID == "" {
			_ = conn.Close()
			return
		}

		sub := hub.Subscribe(userID)
		defer sub.Close()

		// El lector solo detecta el cierre del socket por parte del cliente
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					sub.Close()
					return
				}
			}
		}()

		for event := range sub.Events() {
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	})
}
