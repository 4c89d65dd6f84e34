package handler

import (
	"progas-backend/pkg/config"
	"progas-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler implements the admin gate: a static PIN compared in plaintext.
// It is a deterrent for the owner dashboard, not a security boundary; there
// is no lockout and no hashing.
type AuthHandler struct {
	cfg config.AdminConfig
}

func NewAuthHandler(cfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type pinRequest struct {
	PIN string `json:"pin"`
}

func (h *AuthHandler) EnterPIN(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.PIN != h.cfg.PIN {
		return c.Status(401).JSON(fiber.Map{"error": "Incorrect PIN"})
	}

	token, err := jwt.GenerateAdminToken(h.cfg.JWTSecret)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"token": token})
}
