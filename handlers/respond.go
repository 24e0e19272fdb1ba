package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto a status code and a {message} body.
// what names the entity ("news article"), action the verb used in 500s.
func fail(c *fiber.Ctx, err error, what, action string) error {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return message(c, fiber.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrUnauthorized):
		return message(c, fiber.StatusUnauthorized, "No token provided")
	case errors.Is(err, services.ErrInvalidToken):
		return message(c, fiber.StatusUnauthorized, "Invalid token")
	case errors.Is(err, services.ErrInvalidCredentials):
		return message(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		return message(c, fiber.StatusNotFound, capitalize(what)+" not found")
	}

	log.Printf("❌ [API] %s %s: %v", c.Method(), c.Path(), err)
	return message(c, fiber.StatusInternalServerError, "Failed to "+action+" "+what)
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func badBody(c *fiber.Ctx) error {
	return message(c, fiber.StatusBadRequest, "Invalid request body")
}

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badID(c *fiber.Ctx) error {
	return message(c, fiber.StatusBadRequest, "Invalid id")
}

// listOptions reads ?limit=N; anything that is not a positive integer means no limit.
func listOptions(c *fiber.Ctx, includeHidden bool) services.ListOptions {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	return services.ListOptions{IncludeHidden: includeHidden, Limit: limit}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// errorHandler renders framework errors (unknown route, oversized body) as {message}.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return message(c, fe.Code, fe.Message)
	}
	log.Printf("❌ [API] Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return message(c, fiber.StatusInternalServerError, "Internal server error")
}
