package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emprendeuni/Backend-EmprendeUni/src/config"
	"github.com/emprendeuni/Backend-EmprendeUni/src/lib"
	"github.com/emprendeuni/Backend-EmprendeUni/src/services"
)

// ProtectRoute verifica el token del proveedor de identidad, resuelve el
// perfil del sujeto (creándolo vacío en la primera sesión) y lo adjunta al
// contexto de la petición.
func ProtectRoute(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {

		// Obtener token del header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No autorizado - Token no proporcionado",
			})
		}

		// Extraer el token (formato esperado: "Bearer <token>")
		var token string
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		} else {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No autorizado - Formato de token inválido",
			})
		}

		claims, err := lib.VerifyJWT(token, cfg.JWTSecret)
		if err != nil || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No autorizado - Token inválido",
			})
		}

		identity, ok := lib.IdentityFromClaims(claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No autorizado - Token inválido",
			})
		}

		profile, err := services.EnsureProfile(lib.DB, identity.Subject, identity.Email, identity.Name)
		if err != nil {
			lib.Logger.Error("cannot resolve profile for authenticated subject")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error del servidor",
			})
		}

		c.Locals("userID", identity.Subject)
		c.Locals("profile", *profile)

		return c.Next()
	}
}
