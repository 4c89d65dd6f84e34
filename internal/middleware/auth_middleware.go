package middleware

import (
	"strings"

	"progas-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin validates the dashboard session token minted by the PIN gate.
func RequireAdmin(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		if _, err := jwt.ValidateToken(parts[1], jwtSecret); err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		return c.Next()
	}
}
