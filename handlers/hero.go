package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupHeroSlideRoutes(r routes, svc *services.HeroSlideService) {
	// 🔓 Public: active slides only
	r.api.Get("/hero-slides", func(c *fiber.Ctx) error {
		slides, err := svc.List(listOptions(c, false))
		if err != nil {
			return fail(c, err, "hero slides", "fetch")
		}
		return c.JSON(slides)
	})
	r.api.Get("/hero-slides/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		slide, err := svc.Get(id, false)
		if err != nil {
			return fail(c, err, "hero slide", "fetch")
		}
		return c.JSON(slide)
	})

	// 🔐 Admin
	r.admin.Get("/hero-slides", func(c *fiber.Ctx) error {
		slides, err := svc.List(listOptions(c, true))
		if err != nil {
			return fail(c, err, "hero slides", "fetch")
		}
		return c.JSON(slides)
	})

	r.api.Post("/hero-slides", r.requireAdmin, func(c *fiber.Ctx) error {
		var in services.HeroSlideInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		slide, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "hero slide", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(slide)
	})

	r.api.Put("/hero-slides/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.HeroSlideInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		slide, err := svc.Update(id, in)
		if err != nil {
			return fail(c, err, "hero slide", "update")
		}
		return c.JSON(slide)
	})

	r.api.Delete("/hero-slides/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "hero slide", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
