package lib

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Returns a map with a message key for API responses
func MessageResponse(message string) fiber.Map {
	return fiber.Map{
		"message": message,
	}
}

// Identity son los claims mínimos que el proveedor de identidad incluye en
// sus tokens: el sujeto estable más email y nombre como valores por defecto
// del perfil.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// VerifyJWT verifies and decodes an identity-provider token, returning its claims
func VerifyJWT(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma inválido")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
}

// IdentityFromClaims extracts the stable subject and profile defaults from
// verified token claims.
func IdentityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return Identity{}, false
	}

	identity := Identity{Subject: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, true
}

// SignIdentityToken emite un token con el formato del proveedor de identidad.
// Se usa en desarrollo local y en tests; en producción los tokens vienen del
// proveedor externo.
func SignIdentityToken(secret, subject, email, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"name":  name,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
