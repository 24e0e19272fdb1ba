package handlers

import (
	"cricket-club-site/models"
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRegistrationRoutes(r routes, svc *services.RegistrationService) {
	r.api.Get("/registrations", r.requireAdmin, func(c *fiber.Ctx) error {
		regs, err := svc.List()
		if err != nil {
			return fail(c, err, "registrations", "fetch")
		}
		return c.JSON(regs)
	})

	r.api.Post("/registrations", func(c *fiber.Ctx) error {
		var in services.RegistrationInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		reg, err := svc.Create(in)
		if err != nil {
			return fail(c, err, "registration", "submit")
		}
		return c.Status(fiber.StatusCreated).JSON(reg)
	})

	r.api.Put("/registrations/:id/status", r.requireAdmin, func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return badID(c)
		}
		var req struct {
			Status models.RegistrationStatus `json:"status"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		reg, err := svc.UpdateStatus(id, req.Status)
		if err != nil {
			return fail(c, err, "registration", "update")
		}
		return c.JSON(reg)
	})
}
