package middleware

import (
	"errors"
	"strings"

	"github.com/fajarshiddiqqq/roommate-interior-be/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber locals key holding verified token claims.
const ClaimsKey = "claims"

// RequireToken gates a route behind a valid bearer token. Missing and
// expired credentials map to 401, malformed and invalid ones to 403.
func RequireToken(issuer *auth.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Token is missing",
				"data":    nil,
			})
		}

		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "Invalid token format",
				"data":    nil,
			})
		}

		claims, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status":  false,
					"message": "Token has expired",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "Invalid token",
				"data":    nil,
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
