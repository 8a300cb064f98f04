package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MartinGalvanCastro/Software-Modernization/pkg/jwt"
)

// LocalSubject key del subject autenticado en c.Locals.
const LocalSubject = "subject"

// AuthMiddleware valida el Bearer Token JWT y deja el subject en c.Locals.
// Protege las rutas mutadoras; las lecturas y los health probes son públicos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized", "Authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized", "expected format: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized", "empty token")
		}
		subject, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized", "invalid or expired token")
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}

// GetSubject devuelve el subject del contexto (después del middleware).
func GetSubject(c *fiber.Ctx) string {
	v := c.Locals(LocalSubject)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
