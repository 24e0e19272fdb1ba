package handlers

import (
	"cricket-club-site/models"
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
)

// contentKey reads :contentType/:contentId. When either is bad it writes a 400
// and returns ok == false along with the error from writing the response.
func contentKey(c *fiber.Ctx) (ct models.ContentType, id uint, ok bool, err error) {
	ct = models.ContentType(c.Params("contentType"))
	if !ct.Valid() {
		return "", 0, false, message(c, fiber.StatusBadRequest, "Invalid content type")
	}
	id, ok = parseID(c, "contentId")
	if !ok {
		return "", 0, false, badID(c)
	}
	return ct, id, true, nil
}

func SetupSocialRoutes(r routes, svc *services.SocialService) {
	social := r.api.Group("/social/:contentType/:contentId")

	social.Get("/", func(c *fiber.Ctx) error {
		ct, id, ok, err := contentKey(c)
		if !ok {
			return err
		}
		row, err := svc.Get(ct, id)
		if err != nil {
			return fail(c, err, "social interactions", "fetch")
		}
		return c.JSON(row.Counters())
	})

	bump := func(inc func(models.ContentType, uint) (*models.SocialInteraction, error), action string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			ct, id, ok, err := contentKey(c)
			if !ok {
				return err
			}
			row, err := inc(ct, id)
			if err != nil {
				return fail(c, err, "content", action)
			}
			return c.JSON(row.Counters())
		}
	}

	social.Post("/like", bump(svc.IncrementLikes, "like"))
	social.Post("/dislike", bump(svc.IncrementDislikes, "dislike"))
	social.Post("/share", bump(svc.IncrementShares, "share"))
}
