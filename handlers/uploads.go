package handlers

import (
	"fmt"
	"log"

	"cricket-club-site/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(r routes, store utils.ImageStore) {
	r.api.Post("/uploads", r.requireAdmin, func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return message(c, fiber.StatusBadRequest, "No file uploaded")
		}
		if fileHeader.Size > utils.MaxImageSize {
			return message(c, fiber.StatusBadRequest,
				fmt.Sprintf("File too large (max %d MB)", utils.MaxImageSize/(1024*1024)))
		}

		key, contentType, err := utils.ImageKey(c.FormValue("folder"), fileHeader.Filename)
		if err != nil {
			return message(c, fiber.StatusBadRequest, err.Error())
		}

		file, err := fileHeader.Open()
		if err != nil {
			return message(c, fiber.StatusBadRequest, "Failed to read upload")
		}
		defer file.Close()

		url, err := store.Save(c.UserContext(), key, contentType, file)
		if err != nil {
			log.Printf("❌ [Upload] %s: %v", key, err)
			return message(c, fiber.StatusInternalServerError, "Failed to upload image")
		}

		log.Printf("🖼️ [Upload] Stored %s (%d bytes)", key, fileHeader.Size)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	})
}
