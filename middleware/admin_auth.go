// middleware/admin_auth.go
package middleware

import (
	"errors"
	"log"
	"strings"

	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

// AdminLocalsKey holds the *services.Principal of an authenticated admin.
const AdminLocalsKey = "admin"

// TokenVerifier is the part of the auth service the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*services.Principal, error)
}

// AdminAuth requires a valid "Authorization: Bearer <token>" header.
// Any valid token grants admin access; the role claim is carried, not checked.
func AdminAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := verifier.Verify(bearerToken(c.Get(fiber.HeaderAuthorization)))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				log.Printf("🚫 [ADMIN_AUTH] Missing token for %s %s", c.Method(), c.Path())
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No token provided"})
			}
			log.Printf("❌ [ADMIN_AUTH] Rejected token for %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals(AdminLocalsKey, principal)
		return c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>". A bare "Bearer" (the
// server trims the trailing space) or a missing header yields "".
func bearerToken(header string) string {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return ""
	case strings.EqualFold(parts[0], "Bearer"):
		if len(parts) < 2 {
			return ""
		}
		return parts[1]
	default:
		return header
	}
}

// Admin returns the principal stored by AdminAuth, or nil.
func Admin(c *fiber.Ctx) *services.Principal {
	p, _ := c.Locals(AdminLocalsKey).(*services.Principal)
	return p
}
