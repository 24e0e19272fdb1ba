package handlers

import (
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(r routes, svc *services.StatsService) {
	r.api.Get("/stats/team", func(c *fiber.Ctx) error {
		stats, err := svc.TeamStatistics()
		if err != nil {
			return fail(c, err, "team statistics", "fetch")
		}
		return c.JSON(stats)
	})
}
