package handlers

import (
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/auth"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/config"
	"github.com/fajarshiddiqqq/roommate-interior-be/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// AuthHandler handles the admin login exchange
type AuthHandler struct {
	issuer *auth.Issuer
	cfg    config.AuthConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(issuer *auth.Issuer, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{issuer: issuer, cfg: cfg}
}

// Login exchanges the admin email and password for a signed token. There
// is a single admin identity, configured through the environment.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input requests.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "JSON body is required",
			"data":    nil,
		})
	}

	if err := validator.ValidateStruct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": err.Error(),
			"data":    nil,
		})
	}

	if input.Email != h.cfg.AdminEmail {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized",
			"data":    nil,
		})
	}
	if input.Password != h.cfg.AdminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Wrong password",
			"data":    nil,
		})
	}

	token, err := h.issuer.Issue(input.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Failed to issue token",
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Successfully login",
		"data":    token,
	})
}
