package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(r routes, svc *services.PlayerService) {
	// 🔓 Public: active roster. /with-stats is registered before /:id.
	r.api.Get("/players", func(c *fiber.Ctx) error {
		players, err := svc.List(listOptions(c, false))
		if err != nil {
			return fail(c, err, "players", "fetch")
		}
		return c.JSON(players)
	})
	r.api.Get("/players/with-stats", func(c *fiber.Ctx) error {
		players, err := svc.ListWithStats(false)
		if err != nil {
			return fail(c, err, "players with stats", "fetch")
		}
		return c.JSON(players)
	})
	r.api.Get("/players/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		player, err := svc.Get(id, false)
		if err != nil {
			return fail(c, err, "player", "fetch")
		}
		return c.JSON(player)
	})

	// 🔐 Admin
	r.admin.Get("/players", func(c *fiber.Ctx) error {
		players, err := svc.List(listOptions(c, true))
		if err != nil {
			return fail(c, err, "players", "fetch")
		}
		return c.JSON(players)
	})
	r.admin.Get("/players/with-stats", func(c *fiber.Ctx) error {
		players, err := svc.ListWithStats(true)
		if err != nil {
			return fail(c, err, "players with stats", "fetch")
		}
		return c.JSON(players)
	})

	r.api.Post("/players", r.requireAdmin, func(c *fiber.Ctx) error {
		var in services.PlayerInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		player, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "player", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	})

	r.api.Put("/players/:id/stats", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.StatsInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		stats, err := svc.UpsertStats(id, in)
		if err != nil {
			return fail(c, err, "player", "update stats of")
		}
		return c.JSON(stats)
	})

	r.api.Put("/players/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.PlayerInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		player, err := svc.Update(id, in)
		if err != nil {
			return fail(c, err, "player", "update")
		}
		return c.JSON(player)
	})

	r.api.Delete("/players/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "player", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
