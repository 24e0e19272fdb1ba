package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCommentRoutes(r routes, svc *services.CommentService) {
	r.api.Get("/comments/:contentType/:contentId", func(c *fiber.Ctx) error {
		ct, id, ok, err := contentKey(c)
		if !ok {
			return err
		}
		comments, err := svc.List(ct, id)
		if err != nil {
			return fail(c, err, "comments", "fetch")
		}
		return c.JSON(comments)
	})

	r.api.Post("/comments", func(c *fiber.Ctx) error {
		var in services.CommentInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		comment, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "comment", "create")
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	})

	r.api.Delete("/comments/:id", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err, "comment", "delete")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
