package handlers

import (
	"cricket-club-site/middleware"
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(r routes, auth *services.AuthService) {
	r.api.Post("/auth/login", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}

		res, err := auth.Login(req.Username, req.Password)
		if err != nil {
			return fail(c, err, "user", "log in")
		}
		return c.JSON(res)
	})

	r.api.Get("/auth/me", r.requireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(middleware.Admin(c))
	})
}
