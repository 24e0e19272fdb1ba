package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(r routes, svc *services.TournamentService) {
	// 🔓 Public fixtures list, soonest first
	r.api.Get("/tournaments", func(c *fiber.Ctx) error {
		tournaments, err := svc.List(listOptions(c, false))
		if err != nil {
			return fail(c, err, "tournaments", "fetch")
		}
		return c.JSON(tournaments)
	})
	r.api.Get("/tournaments/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		t, err := svc.Get(id)
		if err != nil {
			return fail(c, err, "tournament", "fetch")
		}
		return c.JSON(t)
	})

	// 🔐 Tournament CRUD (admin only)
	r.api.Post("/tournaments", r.requireAdmin, func(c *fiber.Ctx) error {
		var in services.TournamentInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		t, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "tournament", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.api.Put("/tournaments/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.TournamentInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		t, err := svc.Update(id, in)
		if err != nil {
			return fail(c, err, "tournament", "update")
		}
		return c.JSON(t)
	})

	r.api.Delete("/tournaments/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "tournament", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
