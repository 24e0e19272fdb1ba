package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupNewsRoutes(r routes, svc *services.NewsService) {
	// 🔓 Public: published articles, newest first
	r.api.Get("/news", func(c *fiber.Ctx) error {
		articles, err := svc.List(listOptions(c, false))
		if err != nil {
			return fail(c, err, "news", "fetch")
		}
		return c.JSON(articles)
	})
	r.api.Get("/news/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		article, err := svc.Get(id, false)
		if err != nil {
			return fail(c, err, "article", "fetch")
		}
		return c.JSON(article)
	})

	// 🔐 Admin: drafts and scheduled articles included
	r.admin.Get("/news", func(c *fiber.Ctx) error {
		articles, err := svc.List(listOptions(c, true))
		if err != nil {
			return fail(c, err, "news", "fetch")
		}
		return c.JSON(articles)
	})
	r.admin.Get("/news/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		article, err := svc.Get(id, true)
		if err != nil {
			return fail(c, err, "article", "fetch")
		}
		return c.JSON(article)
	})

	r.api.Post("/news", r.requireAdmin, func(c *fiber.Ctx) error {
		var in services.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		article, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "news article", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(article)
	})

	r.api.Put("/news/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		article, err := svc.Update(id, in)
		if err != nil {
			return fail(c, err, "news article", "update")
		}
		return c.JSON(article)
	})

	r.api.Delete("/news/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "news article", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
