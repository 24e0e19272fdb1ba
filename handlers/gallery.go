package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGalleryRoutes(r routes, svc *services.GalleryService) {
	r.api.Get("/gallery", func(c *fiber.Ctx) error {
		items, err := svc.List(listOptions(c, false))
		if err != nil {
			return fail(c, err, "gallery", "fetch")
		}
		return c.JSON(items)
	})
	r.api.Get("/gallery/:id", func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		item, err := svc.Get(id, false)
		if err != nil {
			return fail(c, err, "gallery item", "fetch")
		}
		return c.JSON(item)
	})

	r.admin.Get("/gallery", func(c *fiber.Ctx) error {
		items, err := svc.List(listOptions(c, true))
		if err != nil {
			return fail(c, err, "gallery", "fetch")
		}
		return c.JSON(items)
	})

	r.api.Post("/gallery", r.requireAdmin, func(c *fiber.Ctx) error {
		var in services.GalleryInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		item, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "gallery item", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	r.api.Put("/gallery/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var in services.GalleryInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		item, err := svc.Update(id, in)
		if err != nil {
			return fail(c, err, "gallery item", "update")
		}
		return c.JSON(item)
	})

	r.api.Delete("/gallery/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "gallery item", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
